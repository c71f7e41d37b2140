package dto

import "github.com/samber/lo"

// Item is the request body of the item endpoints.
// Required strings are pointers so an empty value is still present.
type Item struct {
	Name        *string  `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Tax         *float64 `json:"tax"`
}

// ItemPath is the item id path segment, any integer
type ItemPath struct {
	ItemID int `uri:"item_id"`
}

// RangedItemPath restricts the item id to [10, 20]
type RangedItemPath struct {
	ItemID int `uri:"item_id" binding:"gte=10,lte=20"`
}

// RequiredQuery carries a mandatory q parameter; an empty value still counts as present
type RequiredQuery struct {
	Q *string `form:"q" binding:"required"`
}

// OptionalQuery carries an optional q parameter
type OptionalQuery struct {
	Q string `form:"q"`
}

// UpdateItemRequest is the two-object body of PUT /items/:item_id,
// bound and validated as a single document
type UpdateItemRequest struct {
	Item Item     `json:"item"`
	User BodyUser `json:"user"`
}

// ItemResponse flattens an item together with its id and the optional query value
func ItemResponse(itemID int, item Item, q string) map[string]interface{} {
	result := map[string]interface{}{
		"item_id":     itemID,
		"name":        lo.FromPtr(item.Name),
		"description": item.Description,
		"price":       item.Price,
		"tax":         item.Tax,
	}
	if q != "" {
		result["q"] = q
	}
	return result
}
