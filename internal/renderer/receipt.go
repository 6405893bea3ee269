// Package renderer turns a transaction plus a store profile into a
// human-viewable receipt. Renderers are pluggable per store profile so a store
// can carry its own layout without the core knowing about it.
package renderer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/adreenastore/pos_backend/internal/utils"
)

const receiptWidth = 32

// Renderer renders one transaction into receipt text.
type Renderer interface {
	Render(txn *models.Transaction, profile *models.StoreProfile) string
}

// Registry selects the renderer for a store profile, falling back to the
// standard text layout for profiles without a registered variant.
type Registry struct {
	variants map[string]Renderer
	fallback Renderer
}

// NewRegistry creates a registry with the standard text renderer as fallback.
func NewRegistry() *Registry {
	return &Registry{
		variants: make(map[string]Renderer),
		fallback: TextRenderer{},
	}
}

// Register binds a renderer variant to a profile ID.
func (r *Registry) Register(profileID string, renderer Renderer) {
	r.variants[profileID] = renderer
}

// ForProfile returns the renderer registered for the profile, or the fallback.
func (r *Registry) ForProfile(profile *models.StoreProfile) Renderer {
	if renderer, ok := r.variants[profile.ProfileID]; ok {
		return renderer
	}
	return r.fallback
}

// TextRenderer produces the standard 32-column plain-text receipt. Cost price
// and profit never appear on a receipt.
type TextRenderer struct{}

var _ Renderer = TextRenderer{}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func leftRight(left, right string) string {
	gap := receiptWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func divider() string {
	return strings.Repeat("-", receiptWidth)
}

// Render lays out the store header, the transaction metadata, one block per
// line item and the total, followed by the store footer.
func (TextRenderer) Render(txn *models.Transaction, profile *models.StoreProfile) string {
	var b strings.Builder

	b.WriteString(center(profile.StoreName) + "\n")
	if profile.StoreAddress != "" {
		b.WriteString(center(profile.StoreAddress) + "\n")
	}
	if profile.StorePhone != "" {
		b.WriteString(center(profile.StorePhone) + "\n")
	}
	b.WriteString(divider() + "\n")

	b.WriteString(leftRight("No: "+txn.TransactionID, txn.Date.Format("15:04")) + "\n")
	b.WriteString(leftRight("Tanggal:", txn.Date.Format("02 January 2006")) + "\n")
	if txn.CustomerName != "" {
		b.WriteString(leftRight("Pembeli:", txn.CustomerName) + "\n")
	}
	b.WriteString(divider() + "\n")

	for _, item := range txn.Items {
		b.WriteString(item.Name + "\n")
		qtyPrice := fmt.Sprintf("  %d x %s", item.Quantity, utils.FormatIDR(item.Price))
		b.WriteString(leftRight(qtyPrice, utils.FormatIDR(item.Subtotal())) + "\n")
	}
	b.WriteString(divider() + "\n")

	b.WriteString(leftRight("Total", utils.FormatIDR(txn.TotalAmount)) + "\n")
	if txn.Note != "" {
		b.WriteString(divider() + "\n")
		b.WriteString("Catatan: " + txn.Note + "\n")
	}
	if profile.StoreFooter != "" {
		b.WriteString(divider() + "\n")
		b.WriteString(center(profile.StoreFooter) + "\n")
	}

	return b.String()
}

// WhatsAppShareLink builds a wa.me deep link that opens a chat with the store
// number, pre-filled with the receipt text. Returns an empty string when the
// profile has no WhatsApp number configured.
func WhatsAppShareLink(phone string, text string) string {
	if phone == "" {
		return ""
	}
	// wa.me expects the number in international form without '+', '-' or
	// leading zeros; Indonesian local numbers start with 0 and map to 62.
	number := strings.NewReplacer("+", "", "-", "", " ", "").Replace(phone)
	if strings.HasPrefix(number, "0") {
		number = "62" + number[1:]
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}
