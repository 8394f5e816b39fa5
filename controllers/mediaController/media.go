package mediaController

import (
	"dlms/middleware"
	"dlms/services"
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
)

var mediaService *services.MediaService

// Init wires the media service used by this controller
func Init(svc *services.MediaService) {
	mediaService = svc
}

// Upload stores a multipart file on the storage provider and persists its
// metadata
func Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	contentType := fileHeader.Header.Get("Content-Type")

	meta, err := mediaService.Upload(c.Context(), fileHeader.Filename, contentType, fileHeader.Size, data)
	if err != nil {
		log.Printf("Error uploading media: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media uploaded successfully.", meta)
}

// GetStreamUrl resolves a media id to its public access URL
func GetStreamUrl(c *fiber.Ctx) error {
	mediaID := c.Params("mediaId")

	url, err := mediaService.GetAccessURL(c.Context(), mediaID)
	if err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Media not found!", nil)
		}
		log.Printf("Error resolving media %s: %v", mediaID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media resolved successfully.", fiber.Map{"url": url})
}

// Download redirects the client to the media's access URL
func Download(c *fiber.Ctx) error {
	mediaID := c.Params("mediaId")

	url, err := mediaService.GetAccessURL(c.Context(), mediaID)
	if err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Media not found!", nil)
		}
		log.Printf("Error resolving media %s: %v", mediaID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve media!", nil)
	}

	return c.Redirect(url, fiber.StatusFound)
}

// Delete removes the media metadata record
func Delete(c *fiber.Ctx) error {
	mediaID := c.Params("mediaId")

	if err := mediaService.Delete(c.Context(), mediaID); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Media not found!", nil)
		}
		log.Printf("Error deleting media %s: %v", mediaID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media deleted successfully.", nil)
}

// AssignCourse sets the owning course on a media record
func AssignCourse(c *fiber.Ctx) error {
	mediaID := c.Params("mediaId")
	courseID := c.Params("courseId")

	if err := mediaService.AssignCourse(c.Context(), mediaID, courseID); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Media not found!", nil)
		}
		log.Printf("Error assigning media %s to course %s: %v", mediaID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign media to course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media assigned to course successfully.", nil)
}
