// hirehub-web is the trusted first-paint server
//
// It renders server-side HTML for the landing pages by calling the listing
// query service in process, with a relaxed page-size ceiling. The cursor it
// embeds in the "load more" link is byte-compatible with the public API, so
// the browser continues the same scroll session over HTTP
package main

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"hirehub/internal/platform/config"
	"hirehub/internal/platform/logger"
	"hirehub/internal/platform/store"

	listdom "hirehub/internal/services/listings/domain"
	listrepo "hirehub/internal/services/listings/repo"
	listsvc "hirehub/internal/services/listings/service"
)

const pageTpl = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>hirehub</title></head>
<body>
<h1>Listings</h1>
<ul>
{{range .Items}}
	<li>
		{{if .IsPinned}}&#9733;{{end}}
		[{{.Kind}}] {{.Title}}, {{.Province}} ({{.Category}})
	</li>
{{end}}
</ul>
{{if .Next}}<a href="?{{.Next}}">load more</a>{{else}}<p>end of results</p>{{end}}
</body>
</html>`

type pageView struct {
	Items []listdom.Listing
	Next  template.URL
}

func main() {
	root := config.New()
	webCfg := root.Prefix("CORE_WEB_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 8)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// trusted deployment: same core, relaxed ceiling
	svc := listsvc.New(st.PG, listrepo.NewPG(), listsvc.Config{
		DefaultPageSize: webCfg.MayInt("PAGE_SIZE", 24),
		MaxPageSize:     webCfg.MayInt("MAX_PAGE_SIZE", 200),
	}, nil)

	tpl := template.Must(template.New("page").Parse(pageTpl))

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		cur, err := listdom.ParseCursor(q.Get("cursor"))
		if err != nil {
			http.Error(w, "bad cursor", http.StatusUnprocessableEntity)
			return
		}
		rt := listdom.ResultType(q.Get("type"))
		if rt == "" {
			rt = listdom.ResultAll
		}
		spec := listdom.FilterSpec{
			ResultType:  rt,
			Category:    q.Get("category"),
			SubCategory: q.Get("sub_category"),
			Province:    q.Get("province"),
			SearchTerm:  q.Get("q"),
			Cursor:      cur,
		}

		page, err := svc.Query(r.Context(), spec)
		if err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("first paint query failed")
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}

		view := pageView{Items: page.Items}
		if page.Cursor != nil {
			next := q
			next.Set("cursor", page.Cursor.Token())
			view.Next = template.URL(next.Encode())
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tpl.Execute(w, view); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("render failed")
		}
	})

	addr := webCfg.MayString("ADDR", ":4100")
	l.Info().Str("addr", addr).Msg("web listening")
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Panic().Err(err).Msg("web server stopped")
	}
}
