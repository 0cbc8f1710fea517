package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/models"
	"github.com/CraftLedger/craft_api/internal/repository"
	"github.com/CraftLedger/craft_api/internal/utils"
)

// Upload carries one uploaded file from the handler layer.
type Upload struct {
	Filename string
	Data     []byte
}

// Submission is the inbound payload for one product submission.
type Submission struct {
	Name       string
	Tags       string
	Transcript string
	Image      *Upload
	Audio      *Upload
}

// ProcessResponse is the outward-facing payload returned for a successful
// submission.
type ProcessResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Tags            []string `json:"tags"`
	Story           string   `json:"story"`
	PriceRange      string   `json:"priceRange"`
	QRLink          string   `json:"qrLink"`
	CertificateLink string   `json:"certificateLink"`
	ImageLink       *string  `json:"imageLink"`
}

// ProductNotifier is the interface the orchestrator uses to emit
// product-created events.
type ProductNotifier interface {
	NotifyProductCreated(record *models.ProductRecord)
}

// ProductService orchestrates the submission pipeline: artifact storage,
// transcript resolution, story synthesis, tag classification, price
// suggestion, certificate encoding and record persistence.
type ProductService struct {
	productRepo  *repository.ProductRepository
	artifacts    *ArtifactService
	transcribe   *TranscribeService
	story        *StoryService
	tags         *TagService
	price        *PriceService
	certificates *CertificateService
	notifier     ProductNotifier
}

// NewProductService constructs a ProductService.
func NewProductService(
	productRepo *repository.ProductRepository,
	artifacts *ArtifactService,
	transcribe *TranscribeService,
	story *StoryService,
	tags *TagService,
	price *PriceService,
	certificates *CertificateService,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		artifacts:    artifacts,
		transcribe:   transcribe,
		story:        story,
		tags:         tags,
		price:        price,
		certificates: certificates,
	}
}

// SetNotifier wires an optional product-created event notifier.
func (s *ProductService) SetNotifier(n ProductNotifier) {
	s.notifier = n
}

// Process runs the full submission pipeline and returns the response
// payload. The heuristic steps are total functions and cannot fail; the
// only failure class is storage I/O, which aborts the submission without
// committing a partial record.
func (s *ProductService) Process(sub *Submission) (*ProcessResponse, error) {
	var imageRef, audioRef *string

	if sub.Image != nil {
		stored, err := s.artifacts.SaveImage(sub.Image.Data, sub.Image.Filename)
		if err != nil {
			return nil, err
		}
		imageRef = &stored
	}
	if sub.Audio != nil {
		stored, err := s.artifacts.SaveAudio(sub.Audio.Data, sub.Audio.Filename)
		if err != nil {
			return nil, err
		}
		audioRef = &stored
	}

	transcript := s.transcribe.Resolve(sub.Transcript, deref(audioRef))
	story := s.story.SynthesizeStory(transcript)
	tags := s.tags.Classify(sub.Tags, deref(imageRef))
	priceRange := s.price.Suggest(tags)

	productID := utils.NewID()
	qrFile, err := s.certificates.Encode(productID)
	if err != nil {
		return nil, err
	}

	record := &models.ProductRecord{
		ID:         productID,
		Name:       sub.Name,
		Image:      imageRef,
		Audio:      audioRef,
		Transcript: transcript,
		Story:      story,
		Tags:       tags,
		PriceRange: priceRange,
		QR:         qrFile,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.productRepo.Put(record); err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", productID).
		Str("name", record.Name).
		Strs("tags", tags).
		Str("price_range", priceRange).
		Msg("product record created")

	if s.notifier != nil {
		s.notifier.NotifyProductCreated(record)
	}

	resp := &ProcessResponse{
		ID:              productID,
		Name:            sub.Name,
		Tags:            tags,
		Story:           story,
		PriceRange:      priceRange,
		QRLink:          "/uploads/qrcodes/" + qrFile,
		CertificateLink: "/certificate/" + productID,
	}
	if imageRef != nil {
		link := "/uploads/images/" + *imageRef
		resp.ImageLink = &link
	}
	return resp, nil
}

// GetProduct returns the stored record for a product id.
func (s *ProductService) GetProduct(id string) (*models.ProductRecord, error) {
	return s.productRepo.Get(id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
