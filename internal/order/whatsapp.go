package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yolimar-textil/storefront-api/internal/models"
)

// Company identifies the seller on every outbound document.
type Company struct {
	Name    string
	Slogan  string
	Phone   string
	Email   string
	Website string
}

// colorNames maps catalog color keys to display names.
var colorNames = map[string]string{
	"negro":    "Negro",
	"blanco":   "Blanco",
	"rosa":     "Rosa",
	"rosado":   "Rosado",
	"rojo":     "Rojo",
	"azul":     "Azul",
	"verde":    "Verde",
	"amarillo": "Amarillo",
	"naranja":  "Naranja",
	"morado":   "Morado",
	"gris":     "Gris",
	"beige":    "Beige",
	"marron":   "Marrón",
	"bordo":    "Bordó",
	"dorado":   "Dorado",
	"plata":    "Plata",
}

func colorName(key string) string {
	if name, ok := colorNames[key]; ok {
		return name
	}
	return key
}

// lineCode is the reference the seller uses to pick the garment: the design
// code for personalized lines, CAT-<product> otherwise.
func lineCode(line models.OrderLine) string {
	if line.IsCustom && line.DesignCode != "" {
		return line.DesignCode
	}
	return fmt.Sprintf("CAT-%d", line.ProductID)
}

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━\n"

// WhatsAppMessage renders an order summary in the message format the seller
// processes orders from. Per-item amounts are pre-discount; the discount
// appears once in the totals block.
func WhatsAppMessage(summary *models.OrderSummary, company Company) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *NUEVO PEDIDO - %s*\n\n", company.Name)
	fmt.Fprintf(&b, "*PEDIDO #: %s*\n", summary.OrderCode)
	fmt.Fprintf(&b, "📅 %s - %s\n\n",
		summary.CreatedAt.Format("02/01/2006"), summary.CreatedAt.Format("15:04:05"))

	b.WriteString(divider)
	b.WriteString("👤 *DATOS DEL CLIENTE*\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "📝 Nombre: %s\n", summary.Client.Name)
	fmt.Fprintf(&b, "📱 Telefono: %s\n", summary.Client.Phone)
	if summary.Client.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s\n", summary.Client.Email)
	}
	b.WriteString("\n")

	b.WriteString(divider)
	b.WriteString("📋 *RESUMEN DE PRODUCTOS*\n")
	b.WriteString(divider)
	b.WriteString("\n")

	for i, line := range summary.Lines {
		fmt.Fprintf(&b, "%d️⃣ *%s* (%s)\n", i+1, line.Name, lineCode(line))
		fmt.Fprintf(&b, "   📍 %s/%s", colorName(line.Color), line.Size)
		if line.IsCustom && line.DesignPosition != "" {
			fmt.Fprintf(&b, " | %s", line.DesignPosition)
		}
		fmt.Fprintf(&b, " | x%d\n", line.Quantity)
		if line.IsCustom && line.DesignName != "" {
			fmt.Fprintf(&b, "   🎨 %s\n", line.DesignName)
		}
		fmt.Fprintf(&b, "   💵 Bs. %d.00\n\n", line.BaseTotal)
	}

	b.WriteString(divider)
	b.WriteString("💰 *TOTALES*\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "📦 Total prendas: %d\n", summary.TotalItems)
	fmt.Fprintf(&b, "💵 Subtotal: Bs. %d.00\n", summary.Subtotal)
	if summary.TotalDiscount > 0 {
		fmt.Fprintf(&b, "🏷️ Descuentos: Bs. %d.00\n", summary.TotalDiscount)
	}
	fmt.Fprintf(&b, "\n*TOTAL A PAGAR: Bs. %d.00*\n\n", summary.TotalPrice)
	b.WriteString("📄 PDF con imagenes disponible para produccion")

	return b.String()
}

// WhatsAppURL builds the wa.me link carrying the message to the company phone.
func WhatsAppURL(company Company, message string) string {
	return "https://wa.me/" + company.Phone + "?text=" + url.QueryEscape(message)
}
