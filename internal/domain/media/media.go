package media

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media represents a piece of multimedia content attached to an event
type Media struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null"`
	Type    Type      `json:"type" gorm:"type:media_type;not null"`
	URL     string    `json:"url" gorm:"not null"`
}

// TableName overrides the table name used by GORM
func (Media) TableName() string {
	return "media"
}

// BeforeCreate sets a UUID before creating the record
func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NewMedia creates a media row for the given event
func NewMedia(eventID uuid.UUID, mediaType Type, url string) *Media {
	return &Media{
		ID:      uuid.New(),
		EventID: eventID,
		Type:    mediaType,
		URL:     url,
	}
}

// Validate checks if the media data is valid
func (m *Media) Validate() error {
	if m.EventID == uuid.Nil {
		return fmt.Errorf("event_id is required")
	}
	if m.URL == "" {
		return fmt.Errorf("url is required")
	}
	return nil
}

// Type represents the kind of media content
type Type byte

const (
	TypeImage Type = iota
	TypeVideo
)

func (t Type) String() string {
	switch t {
	case TypeImage:
		return "IMAGE"
	case TypeVideo:
		return "VIDEO"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *Type) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	mediaType, valid := TypeFromString(str)
	if !valid {
		return fmt.Errorf("invalid media type: %s", str)
	}
	*t = mediaType
	return nil
}

// TypeFromString converts a string to a media Type
func TypeFromString(s string) (Type, bool) {
	switch s {
	case "IMAGE":
		return TypeImage, true
	case "VIDEO":
		return TypeVideo, true
	default:
		return TypeImage, false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (t *Type) Scan(value interface{}) error {
	if value == nil {
		*t = TypeImage
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into media Type", value)
	}

	mediaType, valid := TypeFromString(str)
	if !valid {
		return fmt.Errorf("invalid media type value: %s", str)
	}
	*t = mediaType
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (t Type) Value() (driver.Value, error) {
	return t.String(), nil
}
