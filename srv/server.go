package srv

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"sumpus.exe.dev/config"
	"sumpus.exe.dev/db"
	"sumpus.exe.dev/klon"
	"sumpus.exe.dev/thai"
)

// Server holds shared state for the HTTP/WebSocket server.
type Server struct {
	Config       *config.Config
	DB           *db.DB
	Words        *db.WordRepo
	Results      *db.ResultRepo
	Lexicon      *thai.Lexicon
	Tokenizer    *thai.Tokenizer
	Completions  *thai.Trie // autocomplete source
	Engine       *klon.Engine
	Hostname     string
	TemplatesDir string
	StaticDir    string
}

// New creates a new Server with database, lexicon and rhyme engine.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	_, thisFile, _, _ := runtime.Caller(0)
	baseDir := filepath.Dir(thisFile)
	srv := &Server{
		Config:       cfg,
		Hostname:     cfg.Hostname,
		TemplatesDir: filepath.Join(baseDir, "templates"),
		StaticDir:    filepath.Join(baseDir, "static"),
	}
	if err := srv.setUpDatabase(cfg.DSN); err != nil {
		return nil, err
	}
	if err := srv.setUpEngine(context.Background()); err != nil {
		srv.DB.Close()
		return nil, err
	}
	return srv, nil
}

// setUpDatabase initializes the database connection and runs migrations.
func (s *Server) setUpDatabase(dsn string) error {
	wdb, err := db.Open(dsn)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	s.DB = wdb
	if err := db.RunMigrations(wdb); err != nil {
		wdb.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	s.Words = db.NewWordRepo(wdb)
	s.Results = db.NewResultRepo(wdb)
	return nil
}

// setUpEngine builds the lexicon from the built-in word list, the optional lexicon
// file and the imported words, seeds an empty word store, and wires the engine.
func (s *Server) setUpEngine(ctx context.Context) error {
	lex, err := BuildLexicon(ctx, s.Config.Lexicon, s.Words)
	if err != nil {
		return err
	}
	if n, err := s.Words.Seed(ctx, lex); err != nil {
		return fmt.Errorf("failed to seed words: %w", err)
	} else if n > 0 {
		slog.Info("seeded word store", "words", n)
	}

	s.Lexicon = lex
	s.Completions = lex.WordTrie()
	s.Tokenizer = thai.NewTokenizer(s.Completions, lex.SyllableTrie())
	s.Engine, err = NewEngine(lex, s.Tokenizer, s.Words, s.Config.Workers)
	if err != nil {
		return err
	}
	slog.Info("lexicon loaded", "words", lex.Len())
	return nil
}

// NewEngine wires a rhyme engine over lex. dict supplies rhyme candidates; the
// server passes its word store, offline callers a thai.RhymeIndex.
func NewEngine(lex *thai.Lexicon, tok *thai.Tokenizer, dict klon.RhymeDictionary, workers int) (*klon.Engine, error) {
	if tok == nil {
		tok = thai.NewTokenizer(lex.WordTrie(), lex.SyllableTrie())
	}
	pron := thai.NewPronouncer(lex, tok)
	engine, err := klon.NewEngine(klon.Deps{
		Tokenizer:  tok,
		Pronouncer: pron,
		Phonology:  klon.VowelPatternFunc(thai.VowelPattern),
		Dictionary: dict,
		Scorer:     thai.NewScorer(pron),
	}, klon.WithWorkers(workers))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, nil
}

// BuildLexicon merges the built-in lexicon, an optional TSV file and every word in
// the store. Later sources override earlier ones.
func BuildLexicon(ctx context.Context, path string, words *db.WordRepo) (*thai.Lexicon, error) {
	lex := thai.NewLexicon()
	for _, e := range thai.DefaultLexicon().Entries() {
		lex.Add(e.Word, e.Pronunciation)
	}
	if path != "" {
		extra, err := thai.LoadLexiconFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
		}
		for _, e := range extra.Entries() {
			lex.Add(e.Word, e.Pronunciation)
		}
	}
	if words != nil {
		stored, err := words.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read words: %w", err)
		}
		for _, e := range stored {
			lex.Add(e.Word, e.Pronunciation)
		}
	}
	return lex, nil
}

// Close releases the database.
func (s *Server) Close() error {
	return s.DB.Close()
}

// HandleIndex serves the main page.
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.TemplatesDir, "index.html"))
}

// HandleHealth reports whether the database is reachable.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.PingContext(r.Context()); err != nil {
		slog.Error("health check", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Handler returns the router with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.HandleIndex)
	mux.HandleFunc("GET /healthz", s.HandleHealth)
	mux.HandleFunc("POST /check_rhyme", s.HandleCheckRhyme)
	mux.HandleFunc("GET /autocomplete", s.HandleAutocomplete)
	mux.HandleFunc("GET /ws", s.HandleWS)
	mux.HandleFunc("POST /api/results", s.HandleSaveResult)
	mux.HandleFunc("GET /api/results", s.HandleListResults)
	mux.HandleFunc("GET /results/{id}/ogp.svg", s.HandleOGPImage)
	mux.HandleFunc("GET /results/{id}", s.HandleViewResultPage)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.StaticDir))))
	return mux
}

// Serve starts the HTTP server with the configured routes.
func (s *Server) Serve(addr string) error {
	janitor := s.StartCleanup(s.Config.CleanupInterval, s.Config.ResultRetention)
	defer janitor.StopCleanup()
	slog.Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}
