package cart

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmptyCart is returned when an order message is requested for a
// cart with no items. Callers block checkout on it instead of sending
// an empty order.
var ErrEmptyCart = errors.New("carrinho vazio")

// OrderMessage renders the order summary handed off to WhatsApp.
// Asterisks are WhatsApp bold markup. The output is deterministic for
// a given cart and store name; amounts always carry two decimals.
func (c *Cart) OrderMessage(storeName string) (string, error) {
	items := c.Items()
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Pedido %s*\n\n", storeName)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(&b, "*%s*\n", item.Name)
		fmt.Fprintf(&b, "Categoria: %s\n", category)
		fmt.Fprintf(&b, "Quantidade: %d\n", item.Quantity)
		fmt.Fprintf(&b, "Valor unitário: R$ %s\n", item.UnitPrice.StringFixed(2))
		fmt.Fprintf(&b, "Subtotal: R$ %s\n\n", item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "*TOTAL: R$ %s*", total(items).StringFixed(2))

	return b.String(), nil
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the
// store, pre-filled with the order message. Spaces are encoded as %20,
// the form WhatsApp expects in the text parameter. The hand-off is
// one-way: nothing is read back.
func WhatsAppLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
