package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/foundationapp/i18n"
	"github.com/foundationapp/i18n/cmd/i18nlint/checker"
	"github.com/foundationapp/i18n/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	dir := flag.String("d", cfg.LocalesDir, "directory of locale documents (.json/.yaml/.toml)")
	ref := flag.String("ref", cfg.ReferenceLang, "reference language for redundant keys")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	lang := flag.String("lang", cfg.DefaultLang, "language used with -k")
	key := flag.String("k", "", "print the value resolved for this key path and exit")
	obj := flag.Bool("obj", false, "with -k, resolve as an object (empty object when missing)")
	flag.Parse()

	if *key != "" {
		if err := printKey(*dir, cfg.DefaultLang, *lang, *key, *obj); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		return
	}

	res, err := checker.CheckLocales(*dir, *ref)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	printResult(res)

	if *failOnError && res.HasIssues() {
		os.Exit(1)
	}
}

func printKey(dir, defaultLang, lang, key string, obj bool) error {
	bundle := i18n.New(i18n.Config{DefaultLang: defaultLang})
	if err := bundle.LoadDir(dir); err != nil {
		return err
	}
	locale := bundle.Locale(lang)

	var v any
	if obj {
		v = locale.Obj(key)
	} else {
		v = locale.Resolve(key)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(res *checker.Result) {
	fmt.Println("=== I18N CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)
	fmt.Println("Reference:", res.Reference)
	fmt.Println("Total keys:", len(res.AllKeys))

	for _, lang := range res.Languages {
		fmt.Printf("\n--- [%s] ---\n", lang)

		// missing keys
		if arr := res.MissingKeys[lang]; len(arr) > 0 {
			fmt.Println("Missing keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Missing keys: None")
		}

		// redundant
		if arr := res.RedundantKeys[lang]; len(arr) > 0 {
			fmt.Println("Redundant keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Redundant keys: None")
		}

		// type mismatches
		if arr := res.TypeMismatches[lang]; len(arr) > 0 {
			fmt.Println("Type mismatches:")
			for _, m := range arr {
				fmt.Println("  -", m)
			}
		} else {
			fmt.Println("Type mismatches: None")
		}
	}
}
