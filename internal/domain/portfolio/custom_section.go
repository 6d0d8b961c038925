package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ItemType string

const (
	ItemText  ItemType = "text"
	ItemCard  ItemType = "card"
	ItemImage ItemType = "image"
)

var (
	ErrUnknownItemType = errors.New("unknown custom section item type")
	ErrEmptyItemBody   = errors.New("custom section item has no body")
)

// ItemBody is the payload of a custom section item. The set of
// implementations is closed: TextItem, CardItem and ImageItem.
type ItemBody interface {
	ItemType() ItemType
	sealed()
}

type TextItem struct {
	Content string `json:"content"`
}

type CardItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Link        string `json:"link,omitempty"`
}

type ImageItem struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
}

func (TextItem) ItemType() ItemType  { return ItemText }
func (CardItem) ItemType() ItemType  { return ItemCard }
func (ImageItem) ItemType() ItemType { return ItemImage }

func (TextItem) sealed()  {}
func (CardItem) sealed()  {}
func (ImageItem) sealed() {}

// CustomSectionItem is encoded flat on the wire:
// {"id": 1, "type": "card", "title": "...", "description": "..."}.
type CustomSectionItem struct {
	ID   int64
	Body ItemBody
}

func (i CustomSectionItem) Identity() int64 { return i.ID }

type itemHead struct {
	ID   int64    `json:"id"`
	Type ItemType `json:"type"`
}

func (i CustomSectionItem) MarshalJSON() ([]byte, error) {
	head := itemHead{ID: i.ID}
	switch b := i.Body.(type) {
	case TextItem:
		head.Type = ItemText
		return json.Marshal(struct {
			itemHead
			TextItem
		}{head, b})
	case CardItem:
		head.Type = ItemCard
		return json.Marshal(struct {
			itemHead
			CardItem
		}{head, b})
	case ImageItem:
		head.Type = ItemImage
		return json.Marshal(struct {
			itemHead
			ImageItem
		}{head, b})
	case nil:
		return nil, ErrEmptyItemBody
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownItemType, b)
	}
}

// UnmarshalJSON decodes only the fields of the variant named by "type";
// fields belonging to other variants are dropped.
func (i *CustomSectionItem) UnmarshalJSON(data []byte) error {
	var head itemHead
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	body, err := decodeItemBody(head.Type, data)
	if err != nil {
		return err
	}
	i.ID = head.ID
	i.Body = body
	return nil
}

func decodeItemBody(t ItemType, data []byte) (ItemBody, error) {
	switch ItemType(strings.ToLower(string(t))) {
	case ItemText:
		var b TextItem
		err := json.Unmarshal(data, &b)
		return b, err
	case ItemCard:
		var b CardItem
		err := json.Unmarshal(data, &b)
		return b, err
	case ItemImage:
		var b ImageItem
		err := json.Unmarshal(data, &b)
		return b, err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, t)
}

// DecodeItemBody parses a flat item payload without an id, as sent by the admin UI.
func DecodeItemBody(data []byte) (ItemBody, error) {
	var head itemHead
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	return decodeItemBody(head.Type, data)
}

type SectionLayout string

const (
	LayoutGrid  SectionLayout = "grid"
	LayoutList  SectionLayout = "list"
	LayoutCards SectionLayout = "cards"
)

// CustomSection is a user-defined block. Its id always carries CustomSectionPrefix.
type CustomSection struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Subtitle  string              `json:"subtitle,omitempty"`
	Layout    SectionLayout       `json:"layout"`
	Columns   int                 `json:"columns"`
	Items     []CustomSectionItem `json:"items"`
	IsVisible bool                `json:"isVisible"`
}

// Validate reports items without a body; such items cannot be encoded.
func (s CustomSection) Validate() error {
	for _, it := range s.Items {
		if it.Body == nil {
			return fmt.Errorf("section %q item %d: %w", s.ID, it.ID, ErrEmptyItemBody)
		}
	}
	return nil
}

func cloneCustomSections(in []CustomSection) []CustomSection {
	out := make([]CustomSection, len(in))
	for i, s := range in {
		s.Items = cloneFlat(s.Items)
		out[i] = s
	}
	return out
}
