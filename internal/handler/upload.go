package handler

import (
	"net/http"

	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/uploader"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Uploader uploader.Uploader
}

// Configured tells the admin UI whether upload actions may be offered at all.
func (h *UploadHandler) Configured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": h.Uploader != nil})
}

// UploadMedia pushes each file of a multipart batch to the media host, one at
// a time. The first failure aborts the remaining files and surfaces a single
// generic error; files already uploaded stay uploaded.
func (h *UploadHandler) UploadMedia(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cloudinary no está configurado"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload request"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload request"})
			return
		}
		url, err := h.Uploader.Upload(c.Request.Context(), f, fh.Filename)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Falló la subida a Cloudinary"})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
