package event_test

import (
	"errors"
	"shopfront/event"
	"shopfront/session"
	"testing"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/gomega"
)

func TestCreateEvent(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should build the record from arguments and delegate persistence", func(t *testing.T) {
		var persisted *event.EventRecord
		event.EventPersistCreateFunc = func(record *event.EventRecord, db *gorm.DB) error {
			persisted = record
			return nil
		}

		timestamp := types.TimestampOfDate(2021, 1, 1, 12, 12, 12, 0, time.Local)
		identity := session.Identity{ID: 333, Name: "admin", Nickname: "Administrator"}
		record, err := event.CreateEvent("ORDER", 42, "SF-1001", event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "OrderStatus", PropertyDesc: "OrderStatus",
				OldValue: "pending", OldValueDesc: "pending", NewValue: "shipped", NewValueDesc: "shipped"}},
			&identity, timestamp, nil)

		Expect(err).To(BeNil())
		Expect(record).To(Equal(persisted))
		Expect(*record).To(Equal(event.EventRecord{
			Event: event.Event{
				SourceType: "ORDER",
				SourceId:   42,
				SourceDesc: "SF-1001",

				EventCategory: event.EventCategoryPropertyUpdated,
				UpdatedProperties: event.UpdatedProperties{{PropertyName: "OrderStatus", PropertyDesc: "OrderStatus",
					OldValue: "pending", OldValueDesc: "pending", NewValue: "shipped", NewValueDesc: "shipped"}},

				CreatorId:   333,
				CreatorName: "Administrator",
			},
			Timestamp: timestamp,
		}))
	})

	t.Run("should propagate persistence failures", func(t *testing.T) {
		event.EventPersistCreateFunc = func(record *event.EventRecord, db *gorm.DB) error {
			return errors.New("persist failed")
		}

		record, err := event.CreateEvent("ORDER", 42, "SF-1001", event.EventCategoryPropertyUpdated,
			nil, nil, types.CurrentTimestamp(), nil)
		Expect(record).To(BeNil())
		Expect(err.Error()).To(Equal("persist failed"))
	})
}
