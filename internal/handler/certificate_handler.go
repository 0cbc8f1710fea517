package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/models"
	"github.com/CraftLedger/craft_api/internal/service"
	"github.com/CraftLedger/craft_api/internal/utils"
)

const certificatePage = `<!DOCTYPE html>
<html>
<head><title>Certificate - {{.Name}}</title></head>
<body>
<h2>Authenticity Certificate</h2>
<h3>{{.Name}}</h3>
{{if .ImageLink}}<img src="{{.ImageLink}}" style="max-width:300px">{{end}}
<p><strong>Micro-story:</strong> {{.Story}}</p>
<p><strong>Tags:</strong> {{.Tags}}</p>
<p><strong>Suggested Price Range:</strong> {{.PriceRange}}</p>
<img src="{{.QRLink}}" style="width:160px">
<p>Generated at: {{.CreatedAt}}</p>
</body>
</html>`

const certificateNotFoundPage = `<!DOCTYPE html>
<html>
<head><title>Certificate not found</title></head>
<body><h3>Certificate not found</h3></body>
</html>`

var certificateTmpl = template.Must(template.New("certificate").Parse(certificatePage))

// certificateView is the template payload for the public certificate page.
type certificateView struct {
	Name       string
	ImageLink  string
	Story      string
	Tags       string
	PriceRange string
	QRLink     string
	CreatedAt  string
}

// CertificateHandler renders public certificate pages.
type CertificateHandler struct {
	productService *service.ProductService
}

// NewCertificateHandler constructs a CertificateHandler.
func NewCertificateHandler(productService *service.ProductService) *CertificateHandler {
	return &CertificateHandler{productService: productService}
}

// Show handles GET /certificate/:id. Unknown ids render a distinct
// not-found page; they are an expected condition, not a failure.
func (h *CertificateHandler) Show(c *gin.Context) {
	id := c.Param("id")

	record, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(certificateNotFoundPage))
			return
		}
		log.Error().Err(err).Str("product_id", id).Msg("failed to load certificate record")
		utils.Error(c, 500, "STORAGE_ERROR", "Failed to load certificate")
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := certificateTmpl.Execute(c.Writer, viewFromRecord(record)); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("failed to render certificate page")
	}
}

func viewFromRecord(record *models.ProductRecord) certificateView {
	v := certificateView{
		Name:       record.Name,
		Story:      record.Story,
		Tags:       strings.Join(record.Tags, ", "),
		PriceRange: record.PriceRange,
		QRLink:     "/uploads/qrcodes/" + record.QR,
		CreatedAt:  record.CreatedAt,
	}
	if record.Image != nil {
		v.ImageLink = "/uploads/images/" + *record.Image
	}
	return v
}
