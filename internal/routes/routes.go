package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-registry/internal/controllers"
	"equipment-registry/internal/docs"
	"equipment-registry/internal/repositories"
	"equipment-registry/internal/services"
	"equipment-registry/pkg/filestorage"
	"equipment-registry/pkg/middleware"
	"equipment-registry/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	jwtSvc service.JWTService,
	authPermissionService services.AuthPermissionServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, logger)

	// --- РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	equipmentTypeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	brandRepo := repositories.NewBrandRepository(dbConn)
	userEquipmentRepo := repositories.NewUserEquipmentRepository(dbConn)

	// --- СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	equipmentTypeService := services.NewEquipmentTypeService(equipmentTypeRepo, logger)
	brandService := services.NewBrandService(brandRepo, logger)
	userEquipmentService := services.NewUserEquipmentService(userEquipmentRepo, logger)
	exportService := services.NewEquipmentExportService(equipmentRepo, brandRepo, equipmentTypeRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, exportService, logger)
	equipmentTypeCtrl := controllers.NewEquipmentTypeController(equipmentTypeService, logger)
	brandCtrl := controllers.NewBrandController(brandService, logger)
	userEquipmentCtrl := controllers.NewUserEquipmentController(userEquipmentService, logger)
	uploadCtrl := controllers.NewUploadController(fileStorage, logger)
	permissionCtrl := controllers.NewPermissionController(authPermissionService, logger)

	// --- РОУТЕРЫ ---
	runEquipmentRouter(api, equipmentCtrl, authMW)
	runEquipmentTypeRouter(api, equipmentTypeCtrl)
	runBrandRouter(api, brandCtrl)
	runUserEquipmentRouter(api, userEquipmentCtrl, authMW)
	runUploadRouter(api, uploadCtrl, authMW)
	runPermissionRouter(api, permissionCtrl, authMW)

	api.GET("/docs", docs.Handler())

	logger.Info("InitRouter: создание маршрутов завершено")
}
