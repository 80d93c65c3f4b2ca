package account

import (
	"context"
	"errors"
	"os"
	"shopfront/authority"
	"shopfront/persistence"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	systemAdminRole        = Role{ID: "system-admin", Title: "System Administrator"}
	SystemAdminPermission  = Permission{ID: "system:admin", Title: "System Administration"}
	systemAdminRoleBinding = RolePermissionBinding{ID: 1, RoleID: systemAdminRole.ID, PermissionID: SystemAdminPermission.ID}
)

var (
	LoadPermFunc = loadPerms
)

func LoadPermFuncReset() {
	LoadPermFunc = loadPerms
}

func loadPerms(uid types.ID) authority.Permissions {
	db := persistence.ActiveDataSourceManager.GormDB(context.Background())

	var roleBindings []UserRoleBinding
	if err := db.Where(&UserRoleBinding{UserID: uid}).Find(&roleBindings).Error; err != nil {
		logrus.Errorf("failed to load roles of user %v: %v", uid, err)
		return authority.Permissions{}
	}

	perms := authority.Permissions{}
	for _, rb := range roleBindings {
		var permBindings []RolePermissionBinding
		if err := db.Where(&RolePermissionBinding{RoleID: rb.RoleID}).Find(&permBindings).Error; err != nil {
			logrus.Errorf("failed to load permissions of role %s: %v", rb.RoleID, err)
			continue
		}
		for _, pb := range permBindings {
			perms = append(perms, pb.PermissionID)
		}
	}
	return perms
}

// DefaultSecurityConfiguration seeds the admin role and, when user 1 is
// absent, the initial admin account.
func DefaultSecurityConfiguration() error {
	db := persistence.ActiveDataSourceManager.GormDB(context.Background())
	if err := db.Save(&systemAdminRole).Error; err != nil {
		return err
	}
	if err := db.Save(&SystemAdminPermission).Error; err != nil {
		return err
	}
	if err := db.Save(&systemAdminRoleBinding).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := User{}
		err := tx.Model(&User{}).Where(&User{ID: 1}).First(&admin).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		initialAdminPassword := os.Getenv("INITIAL_ADMIN_PASSWORD")
		if initialAdminPassword == "" {
			initialAdminPassword = "admin123"
		}
		admin = User{ID: 1, Name: "admin", Nickname: "Administrator", Secret: HashSha256(initialAdminPassword)}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&UserRoleBinding{ID: 1, UserID: admin.ID, RoleID: systemAdminRole.ID}).Error
	})
}
