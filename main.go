package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/handlers"
	"github.com/fuatnargis/telyna-ai/llm"
	"github.com/fuatnargis/telyna-ai/middleware"
	"github.com/fuatnargis/telyna-ai/routes"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/supabase"
	"github.com/fuatnargis/telyna-ai/types"
)

func main() {
	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	transcripts := newTranscriptStore()

	generator, err := llm.NewGenerator(llm.Model(os.Getenv("LLM_MODEL")))
	if err != nil {
		config.Logger.Fatal("Failed to build generator:", err)
	}

	notifier := supabase.NewAuthNotifier()
	notifier.Subscribe(func(event string, user *types.AuthUser) {
		if user != nil {
			config.Logger.Info("Auth event ", event, " for user ", user.ID)
			return
		}
		config.Logger.Info("Auth event ", event)
	})

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux,
		handlers.NewChatHandlers(generator, transcripts),
		handlers.NewConversationHandlers(transcripts),
		handlers.NewAuthHandlers(notifier),
		handlers.NewPreferencesHandlers(transcripts),
	)

	handler := middleware.Chain(middleware.CORSMiddleware)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}

// newTranscriptStore picks Redis when REDIS_URL is set, falling back to the
// in-memory store otherwise.
func newTranscriptStore() store.TranscriptStore {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		config.Logger.Warn("REDIS_URL not set, conversations are kept in memory only")
		return store.NewMemory()
	}

	transcripts, err := store.NewRedisFromURL(context.Background(), redisURL)
	if err != nil {
		config.Logger.Fatal("Failed to connect to Redis:", err)
	}
	return transcripts
}
