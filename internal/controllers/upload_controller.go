package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	apperrors "equipment-registry/pkg/errors"
	"equipment-registry/pkg/filestorage"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxImageSizeBytes = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// UploadEquipmentImage принимает изображение техники и возвращает
// относительный URL для поля equipment_image.
func (ctrl *UploadController) UploadEquipmentImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Файл не был передан", err, nil),
			ctrl.logger)
	}

	if fileHeader.Size > maxImageSizeBytes {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Файл слишком большой", apperrors.ErrBadRequest,
				map[string]interface{}{"max_bytes": maxImageSizeBytes}),
			ctrl.logger)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Недопустимый тип файла", apperrors.ErrBadRequest,
				map[string]interface{}{"extension": ext}),
			ctrl.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		ctrl.logger.Error("UploadEquipmentImage: не удалось открыть файл", zap.Error(err))
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка обработки файла", err, nil),
			ctrl.logger)
	}
	defer src.Close()

	savedPath, err := ctrl.fileStorage.Save(src, fileHeader.Filename, "equipment")
	if err != nil {
		ctrl.logger.Error("UploadEquipmentImage: не удалось сохранить файл", zap.Error(err))
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось сохранить файл", err, nil),
			ctrl.logger)
	}

	body := map[string]string{"url": "/uploads/" + savedPath}
	return utils.SuccessResponse(c, body, "Файл успешно загружен", http.StatusCreated)
}
