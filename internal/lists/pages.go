package lists

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/models"
)

const (
	emptyBody          = "This list is empty."
	continuationSuffix = " (cont.)"
)

// Pages renders the list as one or more pages whose bodies stay within
// common.PageBudget characters. There is always at least one page.
func (l *List) Pages(ownerName string) []models.Page {
	title := l.DisplayTitle(ownerName)

	var bodies []string
	var b strings.Builder
	size := 0
	for i, element := range l.contents {
		line := strconv.Itoa(i+1) + ". " + element
		n := utf8.RuneCountInString(line)
		if size > 0 && size+1+n > common.PageBudget {
			bodies = append(bodies, b.String())
			b.Reset()
			size = 0
		}
		if size > 0 {
			b.WriteByte('\n')
			size++
		}
		b.WriteString(line)
		size += n
	}
	if size > 0 {
		bodies = append(bodies, b.String())
	}
	if len(bodies) == 0 {
		bodies = []string{emptyBody}
	}

	pages := make([]models.Page, 0, len(bodies))
	for i, body := range bodies {
		p := models.Page{
			Title:        title,
			Body:         body,
			ThumbnailURL: l.thumbnail,
			Footer:       fmt.Sprintf("%d/%d", utf8.RuneCountInString(body), common.PageBudget),
			Color:        l.Color(),
		}
		if i > 0 {
			p.Title += continuationSuffix
		}
		pages = append(pages, p)
	}
	return pages
}
