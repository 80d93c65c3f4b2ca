package event

import (
	"shopfront/persistence"
	"shopfront/testinfra"
	"testing"
	"time"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

var (
	testDatabase *testinfra.TestDatabase
)

func setup(t *testing.T) {
	testDatabase = testinfra.StartTestDatabase("shopfront")
	assert.Nil(t, testDatabase.DS.GormDB(nil).AutoMigrate(&EventRecord{}).Error)
	persistence.ActiveDataSourceManager = testDatabase.DS
}
func teardown(t *testing.T) {
	if testDatabase != nil {
		testinfra.StopTestDatabase(testDatabase)
	}
}

func TestEventPersistCreate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should be able to persist event create", func(t *testing.T) {
		setup(t)
		defer teardown(t)

		event := EventRecord{
			Event: Event{
				SourceType: "ORDER",
				SourceId:   42,
				SourceDesc: "SF-1001",

				EventCategory: EventCategoryPropertyUpdated,
				UpdatedProperties: UpdatedProperties{{PropertyName: "OrderStatus", PropertyDesc: "OrderStatus",
					OldValue: "pending", OldValueDesc: "pending", NewValue: "shipped", NewValueDesc: "shipped"}},

				CreatorId:   333,
				CreatorName: "admin",
			},
			Timestamp: types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local),
		}

		assert.Nil(t, eventPersistCreate(&event, testDatabase.DS.GormDB(nil)))

		// assert records in tables
		records := []EventRecord{}
		Expect(testDatabase.DS.GormDB(nil).Model(&EventRecord{}).Find(&records).Error).To(BeNil())
		Expect(len(records)).To(Equal(1))
		Expect(records[0]).To(Equal(event))
	})
}
