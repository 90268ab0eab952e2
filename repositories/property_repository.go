package repositories

import (
	"context"

	"firebase.google.com/go/v4/db"

	"github.com/emmanuelcheru/estate_backend/models"
)

// PropertyRepository wraps the document database operations on property
// records. Handlers depend on this interface so storage can be faked in
// tests.
type PropertyRepository interface {
	Create(ctx context.Context, data models.PropertyData) (*models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// FirebasePropertyRepository stores property records under the "properties"
// node of the Realtime Database.
type FirebasePropertyRepository struct {
	ref *db.Ref
}

func NewPropertyRepository(client *db.Client) *FirebasePropertyRepository {
	return &FirebasePropertyRepository{
		ref: client.NewRef("properties"),
	}
}

// Create persists the record under a freshly generated key and returns the
// stored shape with that key attached.
func (r *FirebasePropertyRepository) Create(ctx context.Context, data models.PropertyData) (*models.Property, error) {
	newRef, err := r.ref.Push(ctx, data)
	if err != nil {
		return nil, err
	}

	return &models.Property{
		ID:           newRef.Key,
		PropertyData: data,
	}, nil
}

// List scans the full collection in key order. Push keys sort
// chronologically, so this is insertion order.
func (r *FirebasePropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	nodes, err := r.ref.OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(nodes))
	for _, node := range nodes {
		var data models.PropertyData
		if err := node.Unmarshal(&data); err != nil {
			return nil, err
		}
		properties = append(properties, models.Property{
			ID:           node.Key(),
			PropertyData: data,
		})
	}

	return properties, nil
}

// GetByID fetches a single record. An absent key is not an error: it yields
// a nil record, which callers surface as a null result.
func (r *FirebasePropertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var data *models.PropertyData
	if err := r.ref.Child(id).Get(ctx, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	return &models.Property{
		ID:           id,
		PropertyData: *data,
	}, nil
}

// Update applies a partial merge: only the supplied fields change, anything
// already stored under other keys survives.
func (r *FirebasePropertyRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.ref.Child(id).Update(ctx, fields)
}

func (r *FirebasePropertyRepository) Delete(ctx context.Context, id string) error {
	return r.ref.Child(id).Delete(ctx)
}
