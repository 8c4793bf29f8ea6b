package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadController handles admin image uploads
type UploadController struct {
	Cloudinary *cloudinary.Cloudinary // nil when CLOUDINARY_URL is not set
}

// NewUploadController creates a new UploadController
func NewUploadController(cld *cloudinary.Cloudinary) *UploadController {
	return &UploadController{Cloudinary: cld}
}

const maxUploadSize = 10 << 20 // 10 MiB

// UploadImage stores a product or CMS image on Cloudinary and returns
// its public URL (Admin only)
func (uc *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if uc.Cloudinary == nil {
		http.Error(w, "Upload not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := uc.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "central_joias/products",
		ResourceType: "image",
	})
	if err != nil {
		http.Error(w, "Error uploading image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": result.SecureURL})
}
