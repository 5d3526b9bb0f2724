package ui

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// GroupItem wraps model.Group to implement list.Item.
type GroupItem struct {
	Group  model.Group
	Joined bool
}

func (i GroupItem) Title() string {
	return i.Group.Name
}

func (i GroupItem) Description() string {
	return fmt.Sprintf("%s • %s members • %s", i.Group.Location, formatCount(i.Group.Members), i.Group.Type)
}

func (i GroupItem) FilterValue() string {
	var sb strings.Builder
	sb.WriteString(i.Group.Name)
	sb.WriteString(" ")
	sb.WriteString(i.Group.Location)
	sb.WriteString(" ")
	sb.WriteString(i.Group.Type)
	return sb.String()
}
