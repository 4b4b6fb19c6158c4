package middleware

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/errors"
)

// UploadedImageURLKey holds the public URL of the file saved by an upload
// middleware, for the downstream handler to pick up.
const UploadedImageURLKey = "uploaded_image_url"

// Multipart form field names the app and dashboard send images under.
const (
	userImageField    = "info21_image"
	partnerImageField = "image"
)

type UploadMiddleware struct {
	baseURL     string
	usersDir    string
	partnersDir string
}

func NewUploadMiddleware(baseURL, usersDir, partnersDir string) *UploadMiddleware {
	return &UploadMiddleware{
		baseURL:     baseURL,
		usersDir:    usersDir,
		partnersDir: partnersDir,
	}
}

// SaveUserImage stores the uploaded file under the users directory, named
// after the authenticated user's ID. Re-uploads by the same user overwrite
// the previous file. A request without a file passes through untouched; the
// handler decides whether that is an error.
func (m *UploadMiddleware) SaveUserImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, errors.AuthUnauthorized, "로그인이 필요합니다")
			c.Abort()
			return
		}
		m.save(c, userImageField, m.usersDir, "users", userID)
	}
}

// SavePartnerImage stores the uploaded file under the partners directory,
// named after the "name" form field. Partners sharing a name share a file.
func (m *UploadMiddleware) SavePartnerImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.save(c, partnerImageField, m.partnersDir, "partners", c.PostForm("name"))
	}
}

func (m *UploadMiddleware) save(c *gin.Context, field, dir, urlSegment, baseName string) {
	log := GetLoggerFromContext(c)

	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			c.Next()
			return
		}
		log.Warn("Failed to read multipart file", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.UploadFailed, "파일 업로드에 실패했습니다")
		c.Abort()
		return
	}

	filename := baseName + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		log.Error("Failed to save uploaded file", nil, map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		errors.InternalError(c, err)
		c.Abort()
		return
	}

	c.Set(UploadedImageURLKey, m.baseURL+"/uploads/"+urlSegment+"/"+filename)

	log.Debug("File uploaded", map[string]interface{}{
		"filename": filename,
	})
	c.Next()
}

// GetUploadedImageURL extracts the saved file's public URL from context.
func GetUploadedImageURL(c *gin.Context) (string, bool) {
	url, exists := c.Get(UploadedImageURLKey)
	if !exists {
		return "", false
	}
	return url.(string), true
}
