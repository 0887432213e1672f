package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

const collectionVendors = "vendors"

type VendorRepository struct {
	col      *mongo.Collection
	products *mongo.Collection
}

// NewVendorRepository builds the repository. The products collection handle
// is needed for the block cascade.
func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{
		col:      db.Collection(collectionVendors),
		products: db.Collection(collectionProducts),
	}
}

type vendorDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	AccountID    string             `bson:"account_id"`
	BusinessName string             `bson:"business_name"`
	Category     string             `bson:"category,omitempty"`
	IsApproved   bool               `bson:"is_approved"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d vendorDoc) toDomain() *domain.Vendor {
	return &domain.Vendor{
		ID:           d.ID.Hex(),
		AccountID:    d.AccountID,
		BusinessName: d.BusinessName,
		Category:     d.Category,
		IsApproved:   d.IsApproved,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := vendorDoc{
		AccountID:    vendor.AccountID,
		BusinessName: vendor.BusinessName,
		Category:     vendor.Category,
		IsApproved:   vendor.IsApproved,
		IsActive:     vendor.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrVendorExists
		}
		return nil, fmt.Errorf("insert vendor: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (*domain.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vendorDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VendorRepository) FindByAccountID(ctx context.Context, accountID string) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vendorDoc
	if err := r.col.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor by account: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VendorRepository) List(ctx context.Context, filter ports.VendorFilter) ([]domain.Vendor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	switch filter.Status {
	case domain.VendorStatusPending:
		q["is_approved"] = false
	case domain.VendorStatusApproved:
		q["is_approved"] = true
	}

	total, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer cur.Close(ctx)

	var vendors []domain.Vendor
	for cur.Next(ctx) {
		var doc vendorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode vendor: %w", err)
		}
		vendors = append(vendors, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate vendors: %w", err)
	}
	return vendors, total, nil
}

// Approve flips the approval flag and returns the updated vendor. Approving
// an already-approved vendor matches the document and changes nothing, so
// the operation is naturally idempotent.
func (r *VendorRepository) Approve(ctx context.Context, id string) (*domain.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_approved": true, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc vendorDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("approve vendor: %w", err)
	}
	return doc.toDomain(), nil
}

// SetActive flips the vendor active flag and cascades it to every product the
// vendor owns. Both writes run in one transaction so a crash cannot leave the
// vendor and its catalog disagreeing.
func (r *VendorRepository) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrVendorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.col.Database().Client().StartSession()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	var productsUpdated int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()

		res, err := r.col.UpdateOne(sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"is_active": active, "updated_at": now}},
		)
		if err != nil {
			return nil, fmt.Errorf("update vendor: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrVendorNotFound
		}

		pres, err := r.products.UpdateMany(sc,
			bson.M{"vendor_id": id},
			bson.M{"$set": bson.M{"is_active": active, "updated_at": now}},
		)
		if err != nil {
			return nil, fmt.Errorf("cascade products: %w", err)
		}
		productsUpdated = pres.ModifiedCount
		return nil, nil
	})
	if err != nil {
		return 0, err
	}
	return productsUpdated, nil
}

// EnsureIndexes creates the vendor collection indexes.
func (r *VendorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_approved", Value: 1}}},
	})
	return err
}
