package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/service"
	"github.com/CraftLedger/craft_api/internal/utils"
)

// ProductHandler handles product submission endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Process handles POST /process. The request is a multipart form with a
// required product_name plus optional tags, transcript, image and audio.
func (h *ProductHandler) Process(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("product_name"))
	if name == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "product_name is required")
		return
	}

	sub := &service.Submission{
		Name:       name,
		Tags:       c.PostForm("tags"),
		Transcript: c.PostForm("transcript"),
	}

	image, err := readUpload(c, "image")
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "failed to read image upload")
		return
	}
	sub.Image = image

	audio, err := readUpload(c, "audio")
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "failed to read audio upload")
		return
	}
	sub.Audio = audio

	resp, err := h.productService.Process(sub)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("submission processing failed")
		utils.Error(c, 500, "STORAGE_ERROR", "Failed to process submission")
		return
	}

	utils.Success(c, 200, "Product processed successfully", resp)
}

// readUpload reads an optional multipart file field into memory. A missing
// field is not an error and yields a nil upload.
func readUpload(c *gin.Context, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		// Absent field or non-multipart body; both mean "no upload".
		return nil, nil
	}
	if err != nil {
		// A present but unparsable part must surface as a client error, not
		// silently degrade to a text-only submission.
		return nil, err
	}
	data, err := readAll(fh)
	if err != nil {
		return nil, err
	}
	return &service.Upload{Filename: fh.Filename, Data: data}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
