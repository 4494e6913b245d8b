package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("hi-IN") {
		t.Fatalf("expected locale hi-IN")
	}

	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
	if _, ok := bundle.Message("en-US", "core.app_name"); !ok {
		t.Fatalf("expected en-US core namespace messages")
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	want, ok := bundle.Message(BaseLocale, "errors.action_retry")
	if !ok {
		t.Fatal("expected base message")
	}
	got, ok := bundle.Message("fr-FR", "errors.action_retry")
	if !ok || got != want {
		t.Fatalf("Message(fr-FR) = %q, %v; want %q", got, ok, want)
	}
	if _, ok := bundle.Message(BaseLocale, "missing.key"); ok {
		t.Fatal("expected missing key")
	}
}

func TestLocalesShareBaseKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		for key := range bundle.LocaleMessages(locale) {
			if _, ok := base[key]; !ok {
				t.Errorf("%s key %q missing from %s", locale, key, BaseLocale)
			}
		}
		if locale == BaseLocale {
			continue
		}
		for key := range base {
			if _, ok := bundle.Message(locale, key); !ok {
				t.Errorf("%s cannot resolve %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/hi-IN/core.yaml"), `locale: "hi-IN"
namespace: "core"
messages:
  "core.app_name": "x"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
