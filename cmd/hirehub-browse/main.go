// hirehub-browse is a terminal scroll client for the public API
//
// Each press of Enter plays the role of the sentinel element scrolling into
// view: the feed controller fetches the next page and prints what arrived.
// Typing a line of text replaces the search term (debounced, like the UI)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"hirehub/internal/client/feed"
	"hirehub/internal/client/rest"
	"hirehub/internal/platform/config"
	"hirehub/internal/platform/logger"
	listdom "hirehub/internal/services/listings/domain"
)

func main() {
	var (
		fType     = flag.String("type", "all", "result type: job | helper | all")
		fProvince = flag.String("province", "all", "province filter")
		fCategory = flag.String("category", "all", "category filter")
		fSize     = flag.Int("size", 10, "page size")
	)
	flag.Parse()

	root := config.New().Prefix("BROWSE_")
	base := root.MayString("BASE_URL", "http://localhost:4000")
	token := root.MayString("TOKEN", "")
	l := logger.Get()

	client := rest.New(base, token)

	settled := make(chan struct{}, 1)
	ctrl := feed.New(client, listdom.FilterSpec{
		ResultType: listdom.ResultType(*fType),
		Category:   *fCategory,
		Province:   *fProvince,
		PageSize:   *fSize,
	},
		feed.WithDebounce(200*time.Millisecond),
		feed.WithNotify(func() {
			select {
			case settled <- struct{}{}:
			default:
			}
		}),
	)

	fmt.Println("enter = scroll, any text = new search term, q = quit")
	printed := 0
	scan := bufio.NewScanner(os.Stdin)
	for {
		switch ctrl.State() {
		case feed.Exhausted:
			if err := ctrl.Err(); err != nil {
				l.Error().Err(err).Msg("feed stopped on error")
			} else {
				fmt.Println("-- end of results --")
			}
		case feed.Idle:
			// re-armed, keep scrolling
		}

		if !scan.Scan() {
			return
		}
		line := scan.Text()
		switch line {
		case "q":
			return
		case "":
			if ctrl.State() == feed.Exhausted {
				fmt.Println("-- exhausted, type a search term for a fresh query --")
				continue
			}
			if !ctrl.Sentinel() {
				continue // already fetching
			}
			<-settled
			printed = dump(ctrl, printed)
		default:
			ctrl.SetSearchTerm(line)
			// wait out the quiet window, then fetch the first page
			time.Sleep(300 * time.Millisecond)
			printed = 0
			select {
			case <-settled: // drop the reset notification
			default:
			}
			if ctrl.Sentinel() {
				<-settled
				printed = dump(ctrl, printed)
			}
		}
	}
}

// dump prints listings accumulated since the last call, returns the new mark
func dump(c *feed.Controller, from int) int {
	items := c.Items()
	for _, l := range items[from:] {
		pin := " "
		if l.IsPinned {
			pin = "*"
		}
		fmt.Printf("%s [%s] %-40s %s / %s\n", pin, l.Kind, l.Title, l.Province, l.Category)
	}
	return len(items)
}
