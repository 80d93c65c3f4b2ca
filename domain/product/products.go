package product

import (
	"errors"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/event"
	"shopfront/idgen"
	"shopfront/persistence"
	"shopfront/session"
	"strconv"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	productIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateProductFunc        = CreateProduct
	QueryProductsFunc        = QueryProducts
	ToggleProductArchiveFunc = ToggleProductArchive
)

func CreateProduct(creation domain.ProductCreation, sec *session.Session) (*domain.Product, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	now := types.CurrentTimestamp()
	product := domain.Product{ID: idgen.NextID(productIdWorker), Name: creation.Name,
		Description: creation.Description, Price: creation.Price,
		CreateTime: now, UpdateTime: now}

	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent("PRODUCT", product.ID, product.Name, event.EventCategoryCreated,
			nil, &sec.Identity, now, tx)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	if ev != nil && event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &product, nil
}

func QueryProducts(q domain.ProductQuery, sec *session.Session) ([]domain.Product, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	query := db.Model(&domain.Product{})
	if !q.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	products := []domain.Product{}
	if err := query.Order("create_time DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ToggleProductArchive maps the action onto the archived flag. Re-applying
// the current state is a no-op that still reports success.
func ToggleProductArchive(id types.ID, action domain.ProductArchiveAction, sec *session.Session) (*domain.ProductArchiveResult, error) {
	target, ok := action.TargetArchived()
	if !ok {
		return nil, bizerror.ErrInvalidAction
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	var result *domain.ProductArchiveResult
	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		product := domain.Product{}
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrNotFound
			}
			return err
		}

		result = &domain.ProductArchiveResult{ProductID: product.ID, IsArchived: target}
		if product.IsArchived == target {
			return nil
		}

		now := types.CurrentTimestamp()
		db := tx.Model(&domain.Product{}).Where("id = ?", id).
			Updates(map[string]interface{}{"is_archived": target, "update_time": now})
		if db.Error != nil {
			return db.Error
		}
		if db.RowsAffected != 1 {
			return errors.New("expected affected row is 1, but actual is " +
				strconv.FormatInt(db.RowsAffected, 10))
		}

		var err error
		ev, err = event.CreateEvent("PRODUCT", product.ID, product.Name, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "IsArchived", PropertyDesc: "IsArchived",
				OldValue: strconv.FormatBool(product.IsArchived), OldValueDesc: strconv.FormatBool(product.IsArchived),
				NewValue: strconv.FormatBool(target), NewValueDesc: strconv.FormatBool(target)}},
			&sec.Identity, now, tx)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	if ev != nil && event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return result, nil
}
