package account_test

import (
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/persistence"
	"shopfront/testinfra"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) {
	db := testinfra.StartTestDatabase("shopfront")
	*testDatabase = db
	Expect(db.DS.GormDB(nil).AutoMigrate(&account.User{}, &account.Role{}, &account.Permission{},
		&account.RolePermissionBinding{}, &account.UserRoleBinding{}).Error).To(BeNil())

	persistence.ActiveDataSourceManager = db.DS
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopTestDatabase(testDatabase)
	}
}

func TestCreateUser(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("only admin can create users", func(t *testing.T) {
		u, err := account.CreateUser(&account.UserCreation{Name: "dave", Secret: "secret1"},
			testinfra.BuildSecCtx(10))
		Expect(u).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrForbidden))
	})

	t.Run("should persist the user with a hashed secret", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		u, err := account.CreateUser(&account.UserCreation{Name: "dave", Secret: "secret1", Nickname: "Dave"},
			testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID))
		Expect(err).To(BeNil())
		Expect(u.ID > 0).To(BeTrue())
		Expect(u.Name).To(Equal("dave"))

		r := account.User{}
		Expect(persistence.ActiveDataSourceManager.GormDB(nil).Where("id = ?", u.ID).First(&r).Error).To(BeNil())
		Expect(r.Secret).To(Equal(account.HashSha256("secret1")))
		Expect(r.Nickname).To(Equal("Dave"))
	})
}

func TestUpdateBasicAuthSecret(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should reject a wrong original secret", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		Expect(persistence.ActiveDataSourceManager.GormDB(nil).Create(&account.User{
			ID: 10, Name: "dave", Secret: account.HashSha256("secret1")}).Error).To(BeNil())

		err := account.UpdateBasicAuthSecret(&account.BasicAuthUpdating{
			OriginalSecret: "wrong", NewSecret: "secret2"}, testinfra.BuildSecCtx(10))
		Expect(err).To(Equal(bizerror.ErrInvalidPassword))
	})

	t.Run("should update the secret of the calling user", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		Expect(persistence.ActiveDataSourceManager.GormDB(nil).Create(&account.User{
			ID: 10, Name: "dave", Secret: account.HashSha256("secret1")}).Error).To(BeNil())

		err := account.UpdateBasicAuthSecret(&account.BasicAuthUpdating{
			OriginalSecret: "secret1", NewSecret: "secret2"}, testinfra.BuildSecCtx(10))
		Expect(err).To(BeNil())

		r := account.User{}
		Expect(persistence.ActiveDataSourceManager.GormDB(nil).Where("id = ?", 10).First(&r).Error).To(BeNil())
		Expect(r.Secret).To(Equal(account.HashSha256("secret2")))
	})
}

func TestDefaultSecurityConfiguration(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should seed the admin role, permission and initial account", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		Expect(account.DefaultSecurityConfiguration()).To(BeNil())

		admin := account.User{}
		db := persistence.ActiveDataSourceManager.GormDB(nil)
		Expect(db.Where("id = ?", 1).First(&admin).Error).To(BeNil())
		Expect(admin.Name).To(Equal("admin"))

		perms := account.LoadPermFunc(types.ID(1))
		Expect(perms.HasRole(account.SystemAdminPermission.ID)).To(BeTrue())

		// idempotent on restart
		Expect(account.DefaultSecurityConfiguration()).To(BeNil())
	})
}
