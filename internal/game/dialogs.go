package game

import (
	"github.com/iburimskiy/spiral-animation/internal/spiral"

	"github.com/ncruces/zenity"
)

// dialogs is the modal input the window front end uses for exact values.
type dialogs interface {
	Entry(title, text, value string) (string, error)
	Family(current spiral.Family) (spiral.Family, error)
	SavePath(defaultName string) (string, error)
}

type zenityDialogs struct{}

func (zenityDialogs) Entry(title, text, value string) (string, error) {
	return zenity.Entry(text,
		zenity.Title(title),
		zenity.EntryText(value),
	)
}

func (zenityDialogs) Family(current spiral.Family) (spiral.Family, error) {
	items := make([]string, 0, len(spiral.Families()))
	for _, f := range spiral.Families() {
		items = append(items, f.String())
	}
	choice, err := zenity.List("Spiral family (current: "+current.String()+")", items,
		zenity.Title("Spiral family"),
	)
	if err != nil {
		return current, err
	}
	return spiral.ParseFamily(choice)
}

func (zenityDialogs) SavePath(defaultName string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save snapshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename(defaultName),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
}
