package timeslot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/slotbook/slotbook/pkg/api"
	log "github.com/sirupsen/logrus"
)

var ErrMalformedResponse = fmt.Errorf("malformed time slot response")
var ErrInvalidSlotId = fmt.Errorf("invalid time slot id")

type Client interface {
	// FetchForWeek retrieves the slot inventory for the week starting at
	// startDate, restricted to the given category ids. A nil or empty slice
	// means no category restriction and the parameter is omitted entirely.
	FetchForWeek(ctx context.Context, startDate time.Time, categoryIds []int) ([]TimeSlot, error)
	Book(ctx context.Context, slotId int) error
	Unbook(ctx context.Context, slotId int) error
}

type ClientImpl struct {
	rest *api.Client
}

func NewClient(rest *api.Client) *ClientImpl {
	return &ClientImpl{rest: rest}
}

// slotRecord is the wire shape of a single inventory entry.
type slotRecord struct {
	Id           int    `json:"id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsBooked     bool   `json:"is_booked"`
	BookedByUser bool   `json:"booked_by_user"`
	Category     int    `json:"category"`
}

func (c *ClientImpl) FetchForWeek(ctx context.Context, startDate time.Time, categoryIds []int) ([]TimeSlot, error) {
	query := url.Values{}
	query.Set("start_date", startDate.Format("2006-01-02"))
	// An empty category_id list is not the same as omitting the parameter on
	// the server side, so it is only added when there is at least one id.
	for _, id := range categoryIds {
		query.Add("category_id", strconv.Itoa(id))
	}

	payload, err := c.rest.Get(ctx, "/timeslots", query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time slots: %w", err)
	}

	// The inventory must be a JSON array. Anything else is a contract
	// violation, not something to coerce.
	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err != nil {
		log.Errorf("Unexpected time slot response shape: %v", err)
		return nil, ErrMalformedResponse
	}

	slots := make([]TimeSlot, 0, len(records))
	for _, raw := range records {
		slot, err := parseSlot(raw)
		if err != nil {
			log.Warnf("Dropping unparseable time slot record: %v", err)
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func parseSlot(raw json.RawMessage) (TimeSlot, error) {
	var record slotRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return TimeSlot{}, fmt.Errorf("failed to decode slot record: %w", err)
	}
	start, err := time.Parse(time.RFC3339, record.StartTime)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid start_time for slot %d: %w", record.Id, err)
	}
	end, err := time.Parse(time.RFC3339, record.EndTime)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid end_time for slot %d: %w", record.Id, err)
	}
	if !end.After(start) {
		return TimeSlot{}, fmt.Errorf("slot %d ends before it starts", record.Id)
	}
	return TimeSlot{
		Id:           record.Id,
		StartTime:    start,
		EndTime:      end,
		IsBooked:     record.IsBooked,
		BookedByUser: record.BookedByUser,
		Category:     record.Category,
	}, nil
}

func (c *ClientImpl) Book(ctx context.Context, slotId int) error {
	if slotId <= 0 {
		return ErrInvalidSlotId
	}
	if _, err := c.rest.Post(ctx, fmt.Sprintf("/timeslots/%d/book", slotId), nil); err != nil {
		return fmt.Errorf("failed to book slot %d: %w", slotId, err)
	}
	return nil
}

func (c *ClientImpl) Unbook(ctx context.Context, slotId int) error {
	if slotId <= 0 {
		return ErrInvalidSlotId
	}
	if _, err := c.rest.Post(ctx, fmt.Sprintf("/timeslots/%d/unbook", slotId), nil); err != nil {
		return fmt.Errorf("failed to unbook slot %d: %w", slotId, err)
	}
	return nil
}
