// controllers/property_controller.go
package controllers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emmanuelcheru/estate_backend/models"
	"github.com/emmanuelcheru/estate_backend/repositories"
	"github.com/emmanuelcheru/estate_backend/services"
	"github.com/emmanuelcheru/estate_backend/utils"
)

type PropertyController struct {
	repo     repositories.PropertyRepository
	uploader services.Uploader
}

func NewPropertyController(repo repositories.PropertyRepository, uploader services.Uploader) *PropertyController {
	return &PropertyController{
		repo:     repo,
		uploader: uploader,
	}
}

// CreateProperty adds a new property record. The image upload is mandatory;
// the record is only written once the blob store has returned a URL. A
// failure after the upload leaves the blob orphaned, which is accepted.
func (pc *PropertyController) CreateProperty(c echo.Context) error {
	if err := c.Request().ParseMultipartForm(10 << 20); err != nil { // 10 MB max
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to parse form data",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No image file was uploaded",
		})
	}

	imageData, err := readFormFile(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read the uploaded image",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	imageURL, err := pc.uploader.Upload(ctx, imageData, file.Filename)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to upload the image",
		})
	}

	data := models.PropertyData{
		Name:         c.FormValue("name"),
		Location:     c.FormValue("location"),
		Description:  c.FormValue("description"),
		Price:        utils.ParseFloat(c.FormValue("price")),
		Bedrooms:     utils.ParseInt(c.FormValue("bedrooms")),
		Bathrooms:    utils.ParseInt(c.FormValue("bathrooms")),
		PropertyType: c.FormValue("propertyType"),
		Period:       c.FormValue("period"),
		ImageURL:     imageURL,
	}
	data.ApplyCreateDefaults()

	property, err := pc.repo.Create(ctx, data)
	if err != nil {
		log.Printf("Error adding property: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to add the property",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Property added successfully",
		Data:    property,
	})
}

// GetProperties returns the full collection in insertion order, each record
// annotated with its key as id.
func (pc *PropertyController) GetProperties(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	properties, err := pc.repo.List(ctx)
	if err != nil {
		log.Printf("Failed to fetch properties: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch properties",
		})
	}

	return c.JSON(http.StatusOK, properties)
}

// GetProperty returns a single record by id. An absent id is not an error:
// the response carries a null record.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	property, err := pc.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Failed to fetch property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch property",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Property retrieved successfully",
		Data:    property,
	})
}

// UpdateProperty applies a partial merge: only the submitted form fields are
// written. The stored imageUrl is replaced only when a new image file
// accompanies the request.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id := c.Param("id")

	if err := c.Request().ParseMultipartForm(10 << 20); err != nil { // 10 MB max
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to parse form data",
		})
	}

	form := c.Request().MultipartForm
	updates := make(map[string]interface{})

	if values, ok := form.Value["name"]; ok {
		updates["name"] = values[0]
	}
	if values, ok := form.Value["location"]; ok {
		updates["location"] = values[0]
	}
	if values, ok := form.Value["description"]; ok {
		updates["description"] = values[0]
	}
	if values, ok := form.Value["price"]; ok {
		updates["price"] = utils.ParseFloat(values[0])
	}
	if values, ok := form.Value["bedrooms"]; ok {
		updates["bedrooms"] = utils.ParseInt(values[0])
	}
	if values, ok := form.Value["bathrooms"]; ok {
		updates["bathrooms"] = utils.ParseInt(values[0])
	}
	if values, ok := form.Value["propertyType"]; ok {
		updates["propertyType"] = values[0]
	}
	if values, ok := form.Value["period"]; ok {
		updates["period"] = values[0]
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if file, err := c.FormFile("image"); err == nil {
		imageData, err := readFormFile(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to read the uploaded image",
			})
		}

		imageURL, err := pc.uploader.Upload(ctx, imageData, file.Filename)
		if err != nil {
			log.Printf("Error uploading image: %v", err)
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to upload the image",
			})
		}
		updates["imageUrl"] = imageURL
	}

	if err := pc.repo.Update(ctx, id, updates); err != nil {
		log.Printf("Failed to update property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update property",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Property updated successfully",
		Data:    updates,
	})
}

// DeleteProperty removes a record after checking that it exists. The
// associated image stays in blob storage.
func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	property, err := pc.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Failed to delete property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete property",
		})
	}
	if property == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Property not found",
		})
	}

	if err := pc.repo.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete property",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Property deleted successfully",
	})
}

func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
