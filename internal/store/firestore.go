package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore adapts a Firestore client to the Store contract.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Insert adds a new document and returns its generated ID.
func (s *FirestoreStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	docRef, _, err := s.client.Collection(collection).Add(ctx, resolveSentinels(data))
	if err != nil {
		return "", err
	}
	return docRef.ID, nil
}

// GetByID fetches a single document, returning ErrNotFound when missing.
func (s *FirestoreStore) GetByID(ctx context.Context, collection, id string) (*Document, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Document{ID: doc.Ref.ID, Data: doc.Data()}, nil
}

// Query runs an equality/range-filtered query against a collection.
func (s *FirestoreStore) Query(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]*Document, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Path, f.Op, f.Value)
	}
	if orderBy != nil {
		dir := firestore.Asc
		if orderBy.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(orderBy.Path, dir)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []*Document
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &Document{ID: doc.Ref.ID, Data: doc.Data()})
	}

	return docs, nil
}

// Update applies a partial update to a single document.
func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		if _, ok := value.(serverTimestampSentinel); ok {
			value = firestore.ServerTimestamp
		}
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil && status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func resolveSentinels(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if _, ok := v.(serverTimestampSentinel); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}
