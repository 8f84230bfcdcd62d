// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"devportfolio/internal/imaging"
	"devportfolio/internal/middleware"
	"devportfolio/internal/models"
	"devportfolio/internal/render"
	"devportfolio/internal/slug"
)

// maxUploadSize is the maximum allowed file upload size (20 MB).
const maxUploadSize = 20 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// thumbableTypes are image types that get a generated thumbnail. GIF is
// excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// mediaFile is the view model for one library entry. The library stores
// upload metadata in PostgreSQL and the files themselves in the public S3
// bucket; editors copy the resulting URL into image fields on content
// forms.
type mediaFile struct {
	ID       uuid.UUID
	Filename string
	URL      string
	ThumbURL string
	Size     string
}

// MediaLibrary renders the media library page.
func (a *Admin) MediaLibrary(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"NoStorage": a.storage == nil}

	if a.storage != nil {
		items, err := a.media.List(100, 0)
		if err != nil {
			slog.Error("list media failed", "error", err)
		}
		files := make([]mediaFile, 0, len(items))
		for _, m := range items {
			f := mediaFile{
				ID:       m.ID,
				Filename: m.OriginalName,
				URL:      a.storage.FileURL(m.S3Key),
				Size:     m.HumanSize(),
			}
			if m.ThumbS3Key != nil {
				f.ThumbURL = a.storage.FileURL(*m.ThumbS3Key)
			}
			files = append(files, f)
		}
		data["Files"] = files
	}

	a.renderer.Admin(w, r, "media", &render.PageData{
		Title:    "Media Library",
		Section:  "media",
		Settings: a.siteSettings(),
		Flashes:  render.PopFlashes(w, r),
		Data:     data,
	})
}

// MediaUpload handles a multipart file upload: sniffs the content type,
// stores the original in S3, generates a thumbnail where possible, and
// records the metadata row.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		render.SetFlash(w, "error", "Object storage is not configured.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		render.SetFlash(w, "error", "File too large. Maximum size is 20 MB.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		render.SetFlash(w, "error", "No file provided.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		render.SetFlash(w, "error", "Failed to read the file.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	// Sniff the content type; never trust the client header.
	contentType := http.DetectContentType(fileBytes)
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if !allowedMediaTypes[contentType] {
		render.SetFlash(w, "error", fmt.Sprintf("File type %q is not allowed.", contentType))
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	// Keep the original name readable in the key; a short random suffix
	// avoids collisions between uploads with the same name.
	base := slug.Generate(strings.TrimSuffix(header.Filename, ext))
	if base == "" {
		base = "file"
	}
	fileID := base + "-" + uuid.New().String()[:8]
	s3Key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	ctx := r.Context()
	if err := a.storage.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		render.SetFlash(w, "error", "Failed to upload the file.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	// Thumbnail is best-effort; the original is already stored.
	var thumbKey *string
	if thumbableTypes[contentType] {
		thumb, err := imaging.Thumbnail(fileBytes)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else {
			tk := fmt.Sprintf("media/%d/%02d/%s_thumb.jpg", now.Year(), now.Month(), fileID)
			if err := a.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	media := &models.Media{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		Bucket:       a.storage.Bucket(),
		S3Key:        s3Key,
		ThumbS3Key:   thumbKey,
		UploaderID:   sess.UserID,
	}
	if _, err := a.media.Create(media); err != nil {
		slog.Error("media db insert failed", "error", err, "key", s3Key)
		render.SetFlash(w, "error", "Failed to save file metadata.")
		http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
		return
	}

	render.SetFlash(w, "success", "Uploaded "+header.Filename+".")
	http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
}

// MediaDelete removes a media item from the database and cleans up its S3
// objects best-effort.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	deleted, err := a.media.Delete(id)
	if err != nil {
		slog.Error("media db delete failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if deleted == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if a.storage != nil {
		ctx := r.Context()
		if err := a.storage.Delete(ctx, deleted.S3Key); err != nil {
			slog.Warn("s3 delete failed", "error", err, "key", deleted.S3Key)
		}
		if deleted.ThumbS3Key != nil {
			if err := a.storage.Delete(ctx, *deleted.ThumbS3Key); err != nil {
				slog.Warn("s3 thumbnail delete failed", "error", err, "key", *deleted.ThumbS3Key)
			}
		}
	}

	render.SetFlash(w, "success", "Deleted "+deleted.OriginalName+".")
	http.Redirect(w, r, "/admin/media/", http.StatusSeeOther)
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
