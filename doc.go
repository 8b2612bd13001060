// Package slidemaker turns an order-of-service text into a slide deck:
// welcome and intro slides, sermon and communion slides, song titles and
// two-paragraph lyric slides, rendered to PDF with headless Chrome.
//
// # Quick Start
//
// Create a converter, convert the text, and close when done:
//
//	conv, err := slidemaker.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, slidemaker.Input{
//	    Text:    "WELCOME/PRAYER (Jane)\n\nAmazing grace\nhow sweet the sound",
//	    Service: slidemaker.ServiceSunday,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("Sunday.pdf", result.PDF, 0644)
//
// The result carries the blocks, the rendered HTML deck and the PDF bytes.
// Use Input.HTMLOnly to skip Chrome entirely.
//
// # Text Format
//
// Paragraphs are separated by blank lines. A paragraph made of a single
// "KEYWORD (content)" line produces a dedicated slide:
//
//	WELCOME/PRAYER (Jane)   Welcome slide
//	COMMUNION (John)        Communion slide
//	SERMON (Pastor Mike)    Message slide
//	CLOSE (Jane)            Close slide
//	CONTRIBUTION (Elders)   Contribution slide, then a details slide
//	TITLE (Amazing Grace)   Song title slide
//
// Every other paragraph is a lyric. Lyrics are paired with a sliding window:
// each slide shows a paragraph on top and the next one below it.
//
// Structural labels such as "Chorus", "Verse", "V2" or "1." are rejected
// with a *ReservedLabelsError unless Input.AllowReservedLabels is set, since
// they would otherwise be projected as lyrics.
//
// # Templates
//
// Slides are rendered through a template set: a layouts.yaml manifest with
// one html/template fragment per layout, plus an optional style.css. Two
// sets are built in ("default" and "plain"); WithAssetPath adds a directory
// whose templates/<name>/ sets take precedence:
//
//	conv, err := slidemaker.NewConverter(
//	    slidemaker.WithTemplate("church"),
//	    slidemaker.WithAssetPath("/path/to/assets"),
//	    slidemaker.WithTimeout(2 * time.Minute),
//	)
//
// # Error Handling
//
// Errors are sentinel values usable with errors.Is:
//
//	if errors.Is(err, slidemaker.ErrEmptyDocument) { ... }
//	if errors.Is(err, slidemaker.ErrTemplateLayoutMissing) { ... }
//	if errors.Is(err, slidemaker.ErrBrowserConnect) { ... }
package slidemaker
