package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/indocart/pos-payments/internal/core/domain"
)

const salesCollection = "sales"

type SaleRepository struct {
	coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{coll: db.Collection(salesCollection)}
}

type mongoSaleItem struct {
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`
	Price     int64  `bson:"price"`
	Quantity  int64  `bson:"quantity"`
}

type mongoSale struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrderID       string             `bson:"order_id"`
	Items         []mongoSaleItem    `bson:"items"`
	Total         int64              `bson:"total"`
	PaymentMethod string             `bson:"payment_method"`
	CashierID     string             `bson:"cashier_id"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (ms mongoSale) toDomain() *domain.Sale {
	items := make([]domain.SaleItem, len(ms.Items))
	for i, it := range ms.Items {
		items[i] = domain.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return &domain.Sale{
		ID:            ms.ID.Hex(),
		OrderID:       ms.OrderID,
		Items:         items,
		Total:         ms.Total,
		PaymentMethod: ms.PaymentMethod,
		CashierID:     ms.CashierID,
		CreatedAt:     ms.CreatedAt,
	}
}

func (r *SaleRepository) Insert(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoSaleItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = mongoSaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	res, err := r.coll.InsertOne(ctx, mongoSale{
		OrderID:       s.OrderID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CashierID:     s.CashierID,
		CreatedAt:     s.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	out := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

// List returns sales newest first.
func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Sale
	for cur.Next(ctx) {
		var ms mongoSale
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		out = append(out, ms.toDomain())
	}
	return out, cur.Err()
}
