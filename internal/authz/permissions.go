package authz

import "equipment-registry/pkg/middleware"

// Список всех привилегий в системе.
const (
	// Глобальные
	Superuser = middleware.Superuser

	// Каталог техники
	EquipmentView   = "equipment:view"
	EquipmentUpdate = "equipment:update"
	EquipmentDelete = "equipment:delete"

	// Регистрации техники за пользователями
	UserEquipmentCreate = "user_equipment:create"
	UserEquipmentView   = "user_equipment:view"
	UserEquipmentDelete = "user_equipment:delete"

	// Загрузка файлов
	UploadsCreate = "uploads:create"
)

// All перечисляет привилегии для сидера справочника.
var All = []string{
	Superuser,
	EquipmentView,
	EquipmentUpdate,
	EquipmentDelete,
	UserEquipmentCreate,
	UserEquipmentView,
	UserEquipmentDelete,
	UploadsCreate,
}
