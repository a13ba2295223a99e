package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/velu-medicals/storefront/internal/admin"
	"github.com/velu-medicals/storefront/internal/cart"
	"github.com/velu-medicals/storefront/internal/catalog"
	"github.com/velu-medicals/storefront/internal/checkout"
	"github.com/velu-medicals/storefront/internal/lookup"
)

const sessionCookie = "cart_session"

// lookupFailedMessage is what the shopper sees when the info backend errors
// out; an empty-but-successful lookup renders noInfoMessage instead.
const (
	lookupFailedMessage = "Failed to retrieve information. Please try again later."
	noInfoMessage       = "No information available."
)

type productRequest struct {
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Price            *decimal.Decimal `json:"price"`
	Image            string           `json:"image"`
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	Dosage           string           `json:"dosage"`
	InStock          bool             `json:"in_stock"`
}

func (r productRequest) toProduct(id string) (catalog.Product, bool) {
	if r.Name == "" || r.Price == nil || r.Price.IsNegative() {
		return catalog.Product{}, false
	}
	cat, ok := catalog.ParseCategory(r.Category)
	if !ok {
		return catalog.Product{}, false
	}
	return catalog.Product{
		ID:               id,
		Name:             r.Name,
		Category:         cat,
		Price:            *r.Price,
		Image:            r.Image,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Dosage:           r.Dosage,
		InStock:          r.InStock,
	}, true
}

type cartResponse struct {
	Items      []cart.Entry `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalValue string       `json:"total_value"`
}

func cartJSON(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalValue: c.TotalValue().StringFixed(2),
	}
}

// cartSession resolves the session cookie, minting one on first contact.
func cartSession(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = sessions.NewID()
			c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
		}
		c.Set("sid", sid)
		c.Next()
	}
}

func sessionCart(c *gin.Context, sessions *cart.Sessions) *cart.Cart {
	return sessions.Get(c.GetString("sid"))
}

func listProductsHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		cat := catalog.Category(c.Query("category"))
		if cat == "" {
			cat = catalog.CategoryAll
		}
		if cat != catalog.CategoryAll {
			if _, ok := catalog.ParseCategory(string(cat)); !ok {
				c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "unknown category"})
				return
			}
		}
		items := catalog.Filter(store.List(), q, cat)
		c.JSON(http.StatusOK, catalog.ListResponse{Q: q, Category: cat, Items: items})
	}
}

func getProductHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func productInfoHandler(store *catalog.Store, searcher lookup.Searcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		if searcher == nil {
			c.JSON(http.StatusServiceUnavailable, catalog.HTTPError{Error: "info lookup is not configured"})
			return
		}
		res, err := searcher.Search(c.Request.Context(), p.Name)
		if err != nil {
			c.JSON(http.StatusBadGateway, catalog.HTTPError{Error: lookupFailedMessage})
			return
		}
		if res.Text == "" {
			res = &lookup.Result{Text: noInfoMessage}
		}
		c.JSON(http.StatusOK, res)
	}
}

func getCartHandler(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartJSON(sessionCart(c, sessions)))
	}
}

func addCartItemHandler(sessions *cart.Sessions, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ProductID string `json:"product_id"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.ProductID == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "product_id is required"})
			return
		}
		p, err := store.Get(in.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		crt := sessionCart(c, sessions)
		crt.Add(p)
		c.JSON(http.StatusOK, cartJSON(crt))
	}
}

func updateCartItemHandler(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid payload"})
			return
		}
		crt := sessionCart(c, sessions)
		if err := crt.SetQuantity(c.Param("id"), in.Quantity); err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "item not in cart"})
			return
		}
		c.JSON(http.StatusOK, cartJSON(crt))
	}
}

func removeCartItemHandler(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := sessionCart(c, sessions)
		if err := crt.Remove(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "item not in cart"})
			return
		}
		c.JSON(http.StatusOK, cartJSON(crt))
	}
}

func checkoutHandler(sessions *cart.Sessions, storeName, phone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := sessionCart(c, sessions).Items()
		if len(entries) == 0 {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "cart is empty"})
			return
		}
		body := checkout.Message(storeName, entries)
		c.JSON(http.StatusOK, gin.H{
			"message": body,
			"link":    checkout.Link(phone, body),
		})
	}
}

func adminLoginHandler(gate *admin.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Secret string `json:"secret"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || !gate.Check(in.Secret) {
			c.JSON(http.StatusUnauthorized, catalog.HTTPError{Error: admin.DeniedMessage})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// adminAuth guards the catalog CRUD with the shared secret header.
func adminAuth(gate *admin.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Check(c.GetHeader("X-Admin-Secret")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, catalog.HTTPError{Error: admin.DeniedMessage})
			return
		}
		c.Next()
	}
}

func createProductHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid payload"})
			return
		}
		p, ok := in.toProduct("")
		if !ok {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "name, category and a non-negative price are required"})
			return
		}
		if err := store.Add(&p); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid payload"})
			return
		}
		p, ok := in.toProduct(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "name, category and a non-negative price are required"})
			return
		}
		if err := store.Update(&p); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
				return
			}
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
