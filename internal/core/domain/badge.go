package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type BadgeCategory string

const (
	CategorySafety    BadgeCategory = "safety"
	CategoryCommunity BadgeCategory = "community"
	CategoryActivity  BadgeCategory = "activity"
	CategoryExpertise BadgeCategory = "expertise"
)

// Action names reported to the achievement check.
const (
	ActionRegistration     = "registration"
	ActionBikeRegistration = "bike_registration"
	ActionGuideCompletion  = "guide_completion"
	ActionProfileUpdate    = "profile_update"
	ActionBikeFound        = "bike_found"
)

type Badge struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name" validate:"required,min=2,max=100"`
	Description  string        `json:"description" validate:"required,min=10"`
	ImageURL     string        `json:"imageUrl" validate:"required"`
	Category     BadgeCategory `json:"category" validate:"required,oneof=safety community activity expertise"`
	Level        int           `json:"level" validate:"required,min=1,max=3"`
	Requirements Requirements  `json:"requirements"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Requirements is the unlock condition stored with a badge. Type names the
// action that can unlock it; the remaining fields narrow it down.
type Requirements struct {
	Type    string      `json:"type" validate:"required"`
	Count   int         `json:"count,omitempty" validate:"min=0"`
	GuideID string      `json:"guideId,omitempty"`
	Field   string      `json:"field,omitempty"`
	Value   interface{} `json:"value,omitempty"`
}

// Satisfied reports whether the action payload and the current progress for
// the action meet r.
func (r Requirements) Satisfied(data map[string]interface{}, progress int) bool {
	if r.GuideID != "" {
		guide, _ := data["guideId"].(string)
		if guide != r.GuideID {
			return false
		}
	}
	if r.Field != "" {
		got, ok := data[r.Field]
		if !ok || !sameJSONValue(got, r.Value) {
			return false
		}
	}
	if r.Count > 0 && progress < r.Count {
		return false
	}
	return true
}

// sameJSONValue compares two values after normalizing them through JSON, so
// an int seeded in Go equals the float64 decoded from a request body.
func sameJSONValue(a, b interface{}) bool {
	na, errA := normalizeJSON(a)
	nb, errB := normalizeJSON(b)
	if errA != nil || errB != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}

func normalizeJSON(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type UserAchievement struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	BadgeID     uuid.UUID `json:"badgeId"`
	CompletedAt time.Time `json:"completedAt"`
	Progress    Progress  `json:"progress"`
	Badge       *Badge    `json:"badge,omitempty"`
}

// Progress is the snapshot stored with an awarded achievement.
type Progress struct {
	Action string                 `json:"actionId"`
	Data   map[string]interface{} `json:"data,omitempty"`
	Count  int                    `json:"count,omitempty"`
}

type AwardResult struct {
	Checked         int                `json:"checked"`
	Awarded         int                `json:"awarded"`
	NewAchievements []*UserAchievement `json:"newAchievements"`
}

func AchievementAlertTitle(b *Badge) string {
	return fmt.Sprintf("New badge earned: %s", b.Name)
}

func AchievementAlertMessage(b *Badge) string {
	return fmt.Sprintf("Congratulations! You earned the %q badge: %s", b.Name, b.Description)
}

// DefaultBadges is the catalog inserted by the seed command on an empty table.
func DefaultBadges() []*Badge {
	return []*Badge{
		{Name: "Helmet On", Description: "Added a new helmet to your profile", ImageURL: "/badges/helmet.svg",
			Category: CategorySafety, Level: 1, Requirements: Requirements{Type: ActionProfileUpdate, Field: "helmet", Value: true}},
		{Name: "Safe Rider", Description: "Completed the site safety guide", ImageURL: "/badges/safe_rider.svg",
			Category: CategorySafety, Level: 1, Requirements: Requirements{Type: ActionGuideCompletion, GuideID: "safety_guide"}},
		{Name: "Community Member", Description: "Joined the bike registry community", ImageURL: "/badges/community_member.svg",
			Category: CategoryCommunity, Level: 1, Requirements: Requirements{Type: ActionRegistration}},
		{Name: "Helper", Description: "Got a stolen bike back to its owner", ImageURL: "/badges/helper.svg",
			Category: CategoryCommunity, Level: 2, Requirements: Requirements{Type: ActionBikeFound, Count: 1}},
		{Name: "Savior", Description: "Got five stolen bikes back to their owners", ImageURL: "/badges/savior.svg",
			Category: CategoryCommunity, Level: 3, Requirements: Requirements{Type: ActionBikeFound, Count: 5}},
		{Name: "Registered Bike", Description: "Registered your first bike in the system", ImageURL: "/badges/registered_bike.svg",
			Category: CategoryActivity, Level: 1, Requirements: Requirements{Type: ActionBikeRegistration, Count: 1}},
		{Name: "Collector", Description: "Registered three bikes in the system", ImageURL: "/badges/collector.svg",
			Category: CategoryActivity, Level: 2, Requirements: Requirements{Type: ActionBikeRegistration, Count: 3}},
		{Name: "Beginner Expert", Description: "Completed the basic bike maintenance guide", ImageURL: "/badges/beginner_expert.svg",
			Category: CategoryExpertise, Level: 1, Requirements: Requirements{Type: ActionGuideCompletion, GuideID: "basic_maintenance"}},
		{Name: "Amateur Mechanic", Description: "Completed the advanced bike maintenance guide", ImageURL: "/badges/amateur_mechanic.svg",
			Category: CategoryExpertise, Level: 2, Requirements: Requirements{Type: ActionGuideCompletion, GuideID: "advanced_maintenance"}},
	}
}
