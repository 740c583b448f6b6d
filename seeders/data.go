package seeders

import "equipment-registry/internal/authz"

type permissionSeed struct {
	Name        string
	Description string
}

var permissionsData = []permissionSeed{
	{authz.Superuser, "Полный доступ ко всем операциям"},
	{authz.EquipmentView, "Просмотр записи каталога техники"},
	{authz.EquipmentUpdate, "Обновление записи каталога техники"},
	{authz.EquipmentDelete, "Удаление записи каталога техники"},
	{authz.UserEquipmentCreate, "Регистрация техники за пользователем"},
	{authz.UserEquipmentView, "Просмотр своей зарегистрированной техники"},
	{authz.UserEquipmentDelete, "Снятие регистрации своей техники"},
	{authz.UploadsCreate, "Загрузка изображений техники"},
}

var rolesData = []string{
	"admin",
	"user",
}

// getRolePermissionsMap - базовые связи ролей и прав.
// Сидер добавляет их, если их ещё нет в базе.
func getRolePermissionsMap() map[string][]string {
	return map[string][]string{
		"admin": {authz.Superuser},
		"user": {
			authz.EquipmentView,
			authz.UserEquipmentCreate,
			authz.UserEquipmentView,
			authz.UserEquipmentDelete,
			authz.UploadsCreate,
		},
	}
}

var equipmentTypesData = []string{
	"Трактор",
	"Культиватор",
	"Жатка",
	"Сеялка",
	"Опрыскиватель",
}

var brandsData = []string{
	"Mahindra",
	"John Deere",
	"Sonalika",
	"New Holland",
}
