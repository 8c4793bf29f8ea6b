package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"central-joias/cart"
	"central-joias/middleware"
	"central-joias/utils"

	"github.com/gorilla/mux"
)

// StoreConfig carries the storefront identity used on checkout
type StoreConfig struct {
	Name       string
	WhatsApp   string // recipient number, digits only, country code included
	OrderEmail string // optional copy of each order; empty disables it
}

// CartController handles the session shopping cart
type CartController struct {
	Carts        *cart.Store
	Store        StoreConfig
	EmailService *utils.EmailService // optional, may be nil
}

// NewCartController creates a new CartController
func NewCartController(carts *cart.Store, store StoreConfig, emailService *utils.EmailService) *CartController {
	return &CartController{
		Carts:        carts,
		Store:        store,
		EmailService: emailService,
	}
}

// sessionCart pulls the cart bound to the request session.
func (cc *CartController) sessionCart(r *http.Request) (*cart.Cart, bool) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		return nil, false
	}
	return cc.Carts.Get(sessionID), true
}

type cartResponse struct {
	Items []cart.Item `json:"items"`
	Total string      `json:"total"`
}

func (cc *CartController) writeCart(w http.ResponseWriter, c *cart.Cart) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{
		Items: c.Items(),
		Total: c.Total().StringFixed(2),
	})
}

// GetCart retrieves the session's cart with its derived total
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c, ok := cc.sessionCart(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}
	cc.writeCart(w, c)
}

// AddToCart merges a raw product record into the session cart. Any
// record shape is accepted; missing fields degrade to defaults instead
// of failing.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	c, ok := cc.sessionCart(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	item := c.Add(raw)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Produto adicionado ao carrinho",
		"item":    item,
	})
}

// RemoveFromCart drops a line item from the session cart entirely.
// Removing an id that is not in the cart is a no-op, not an error.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	c, ok := cc.sessionCart(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}

	params := mux.Vars(r)
	c.Remove(params["id"])
	cc.writeCart(w, c)
}

// ClearCart empties the session cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, ok := cc.sessionCart(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}

	c.Clear()
	cc.writeCart(w, c)
}

// Checkout composes the order summary and the wa.me link the client
// opens. Checkout on an empty cart is refused before any message is
// built. The hand-off is fire-and-forget; when an order inbox is
// configured a copy goes out by email as well.
func (cc *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	c, ok := cc.sessionCart(r)
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}

	message, err := c.OrderMessage(cc.Store.Name)
	if errors.Is(err, cart.ErrEmptyCart) {
		http.Error(w, "Seu carrinho está vazio", http.StatusBadRequest)
		return
	}

	if cc.EmailService != nil && cc.Store.OrderEmail != "" {
		// A lost email copy must not block the order.
		go func() {
			if err := cc.EmailService.SendOrderCopy(cc.Store.OrderEmail, cc.Store.Name, message); err != nil {
				log.Printf("order email error: %v", err)
			}
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":      message,
		"whatsapp_url": cart.WhatsAppLink(cc.Store.WhatsApp, message),
	})
}
