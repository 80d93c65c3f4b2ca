package review

import (
	"errors"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/persistence"
	"shopfront/session"
	"strconv"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

var (
	SetReviewStatusFunc = SetReviewStatus
	QueryReviewsFunc    = QueryReviews
)

// SetReviewStatus applies a moderation action to a review. The action is
// mapped to a target status; unknown actions are rejected before any read.
// A single column update suffices here, reviews have no notification side
// effects and setting the current status again is harmless.
func SetReviewStatus(id types.ID, action domain.ReviewAction, sec *session.Session) (*domain.ReviewStatusTransition, error) {
	target, ok := action.TargetStatus()
	if !ok {
		return nil, bizerror.ErrInvalidAction
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	review := domain.ProductReview{}
	if err := db.Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}

	result := domain.ReviewStatusTransition{ReviewID: review.ID,
		OldStatus: string(review.Status), NewStatus: string(target)}
	if review.Status == target {
		return &result, nil
	}

	updated := db.Model(&domain.ProductReview{}).Where("id = ?", id).Update("status", target)
	if updated.Error != nil {
		return nil, updated.Error
	}
	if updated.RowsAffected != 1 {
		return nil, errors.New("expected affected row is 1, but actual is " +
			strconv.FormatInt(updated.RowsAffected, 10))
	}
	return &result, nil
}

func QueryReviews(q domain.ReviewQuery, sec *session.Session) ([]domain.ProductReview, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	query := db.Model(&domain.ProductReview{})
	if q.ProductID != 0 {
		query = query.Where("product_id = ?", q.ProductID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}

	reviews := []domain.ProductReview{}
	if err := query.Order("create_time DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
