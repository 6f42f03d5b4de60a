package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadYAML(t *testing.T, doc string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(doc)); err != nil {
		t.Fatalf("read config: %v", err)
	}
	return fromViper(v)
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := loadYAML(t, "environment:\n  name: test\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Conversation.MinReplyDelay != time.Second || cfg.Conversation.MaxReplyDelay != 3*time.Second {
		t.Errorf("unexpected reply delays: %s-%s", cfg.Conversation.MinReplyDelay, cfg.Conversation.MaxReplyDelay)
	}
	if cfg.Conversation.ClassificationThreshold != 4 {
		t.Errorf("expected classification threshold 4, got %d", cfg.Conversation.ClassificationThreshold)
	}
	if cfg.Profile.AgentName != "Sarah" || cfg.Profile.BusinessName != "GrowEasy Realtors" {
		t.Errorf("unexpected default profile: %+v", cfg.Profile)
	}
	if !strings.HasPrefix(cfg.Rules.HotCriteria, "Budget defined") {
		t.Errorf("unexpected hot criteria: %q", cfg.Rules.HotCriteria)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "gemini" {
		t.Errorf("expected implicit gemini provider, got %+v", cfg.LLM.Providers)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.CORS.AllowOrigins)
	}
}

func TestFromViper_Providers(t *testing.T) {
	t.Setenv("MY_GEMINI_KEY", "secret")

	cfg, err := loadYAML(t, `
llm:
  retry_attempts: 4
  retry_delay: 250ms
  providers:
    - name: gemini-sdk
      enabled: true
      priority: 2
      api_key: ${MY_GEMINI_KEY}
      model: gemini-1.5-flash
    - name: gemini
      enabled: true
      priority: 1
      api_key: plain
      timeout: 10s
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.RetryAttempts != 4 || cfg.LLM.RetryDelay != 250*time.Millisecond {
		t.Errorf("unexpected retry settings: %d %s", cfg.LLM.RetryAttempts, cfg.LLM.RetryDelay)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[0].APIKey != "secret" {
		t.Errorf("expected expanded api key, got %q", cfg.LLM.Providers[0].APIKey)
	}
	if cfg.LLM.Providers[1].Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.LLM.Providers[1].Timeout)
	}
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate priority",
			doc: `
llm:
  providers:
    - {name: a, enabled: true, priority: 1}
    - {name: b, enabled: true, priority: 1}
`,
			want: "duplicate priority",
		},
		{
			name: "nothing enabled",
			doc: `
llm:
  providers:
    - {name: a, enabled: false, priority: 1}
`,
			want: "no enabled LLM providers",
		},
		{
			name: "inverted reply delays",
			doc: `
conversation:
  min_reply_delay: 5s
  max_reply_delay: 1s
`,
			want: "max_reply_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadYAML(t, tt.doc)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"http://a.test, http://b.test", " ", "http://c.test"})
	want := []string{"http://a.test", "http://b.test", "http://c.test"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
