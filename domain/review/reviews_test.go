package review_test

import (
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/domain/review"
	"shopfront/persistence"
	"shopfront/testinfra"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) {
	db := testinfra.StartTestDatabase("shopfront")
	*testDatabase = db
	Expect(db.DS.GormDB(nil).AutoMigrate(&domain.ProductReview{}).Error).To(BeNil())

	persistence.ActiveDataSourceManager = db.DS
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopTestDatabase(testDatabase)
	}
}

func buildReview(id, productId types.ID, status domain.ReviewStatus) *domain.ProductReview {
	r := domain.ProductReview{ID: id, ProductID: productId, UserID: 10, Rating: 4,
		Body: "works great", Status: status, CreateTime: types.CurrentTimestamp()}
	Expect(persistence.ActiveDataSourceManager.GormDB(nil).Create(&r).Error).To(BeNil())
	return &r
}

func TestSetReviewStatus(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should reject unknown actions", func(t *testing.T) {
		result, err := review.SetReviewStatus(1, "delete",
			testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID))
		Expect(result).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrInvalidAction))
	})

	t.Run("only admin can moderate reviews", func(t *testing.T) {
		result, err := review.SetReviewStatus(1, domain.ReviewActionApprove, testinfra.BuildSecCtx(1))
		Expect(result).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrForbidden))
	})

	t.Run("should fail with not found for unknown review", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		result, err := review.SetReviewStatus(404, domain.ReviewActionApprove,
			testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID))
		Expect(result).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrNotFound))
	})

	t.Run("each action should persist its target status", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		buildReview(1, 100, domain.ReviewStatusPending)
		sec := testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID)

		result, err := review.SetReviewStatus(1, domain.ReviewActionApprove, sec)
		Expect(err).To(BeNil())
		Expect(*result).To(Equal(domain.ReviewStatusTransition{ReviewID: 1,
			OldStatus: "pending", NewStatus: "approved"}))

		r := domain.ProductReview{}
		Expect(persistence.ActiveDataSourceManager.GormDB(nil).Where("id = ?", 1).First(&r).Error).To(BeNil())
		Expect(r.Status).To(Equal(domain.ReviewStatusApproved))

		result, err = review.SetReviewStatus(1, domain.ReviewActionHide, sec)
		Expect(err).To(BeNil())
		Expect(result.NewStatus).To(Equal("hidden"))

		result, err = review.SetReviewStatus(1, domain.ReviewActionRemove, sec)
		Expect(err).To(BeNil())
		Expect(result.NewStatus).To(Equal("removed"))

		result, err = review.SetReviewStatus(1, domain.ReviewActionPending, sec)
		Expect(err).To(BeNil())
		Expect(result.NewStatus).To(Equal("pending"))
	})

	t.Run("re-applying the current status is harmless", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		buildReview(1, 100, domain.ReviewStatusApproved)
		sec := testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID)

		result, err := review.SetReviewStatus(1, domain.ReviewActionApprove, sec)
		Expect(err).To(BeNil())
		Expect(*result).To(Equal(domain.ReviewStatusTransition{ReviewID: 1,
			OldStatus: "approved", NewStatus: "approved"}))
	})
}

func TestQueryReviews(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("only admin can query reviews", func(t *testing.T) {
		records, err := review.QueryReviews(domain.ReviewQuery{}, testinfra.BuildSecCtx(1))
		Expect(records).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrForbidden))
	})

	t.Run("should filter by product and status", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		buildReview(1, 100, domain.ReviewStatusPending)
		buildReview(2, 100, domain.ReviewStatusApproved)
		buildReview(3, 200, domain.ReviewStatusApproved)
		sec := testinfra.BuildSecCtx(1, account.SystemAdminPermission.ID)

		records, err := review.QueryReviews(domain.ReviewQuery{}, sec)
		Expect(err).To(BeNil())
		Expect(len(records)).To(Equal(3))

		records, err = review.QueryReviews(domain.ReviewQuery{ProductID: 100}, sec)
		Expect(err).To(BeNil())
		Expect(len(records)).To(Equal(2))

		records, err = review.QueryReviews(domain.ReviewQuery{ProductID: 100,
			Status: domain.ReviewStatusApproved}, sec)
		Expect(err).To(BeNil())
		Expect(len(records)).To(Equal(1))
		Expect(records[0].ID).To(Equal(types.ID(2)))
	})
}
