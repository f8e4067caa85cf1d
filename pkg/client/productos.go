package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Product mirrors the server's product representation.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct is the writable part of a product on creation.
type NewProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ProductPatch is a partial update; nil fields are left as they are. The id
// is part of the path, never the body.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

type addProductBody struct {
	NewProduct
	OwnerID string `json:"ownerId"`
}

// FetchProducts lists every product owned by ownerID.
func (c *Client) FetchProducts(ctx context.Context, token, ownerID string) ([]Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/productos/"+ownerID, nil, token)
	if err != nil {
		return nil, err
	}
	products := []Product{}
	if raw == nil {
		return products, nil
	}
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddProduct creates a product, merging the owner id into the request body.
func (c *Client) AddProduct(ctx context.Context, token, ownerID string, product NewProduct) (*Product, error) {
	raw, err := c.do(ctx, http.MethodPost, "/productos", addProductBody{NewProduct: product, OwnerID: ownerID}, token)
	if err != nil {
		return nil, err
	}
	return decodeProduct(raw)
}

// UpdateProduct applies a partial update to the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, patch ProductPatch) (*Product, error) {
	raw, err := c.do(ctx, http.MethodPut, "/productos/"+id, patch, token)
	if err != nil {
		return nil, err
	}
	return decodeProduct(raw)
}

// DeleteProduct removes the product with the given id and returns the
// removed record as the server reported it.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) (*Product, error) {
	raw, err := c.do(ctx, http.MethodDelete, "/productos/"+id, nil, token)
	if err != nil {
		return nil, err
	}
	return decodeProduct(raw)
}

func decodeProduct(raw json.RawMessage) (*Product, error) {
	if raw == nil {
		return nil, nil
	}
	var product Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
