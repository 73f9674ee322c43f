package message

const (
	ActualIsNull TemplateID = "actualIsNull"

	ShouldBeBefore           TemplateID = "shouldBeBefore"
	ShouldBeBeforeOrEqualTo  TemplateID = "shouldBeBeforeOrEqualTo"
	ShouldBeAfter            TemplateID = "shouldBeAfter"
	ShouldBeAfterOrEqualTo   TemplateID = "shouldBeAfterOrEqualTo"
	ShouldBeInPeriod         TemplateID = "shouldBeInPeriod"
	ShouldBeStrictlyInPeriod TemplateID = "shouldBeStrictlyInPeriod"

	ShouldBeEqualIgnoringNanos   TemplateID = "shouldBeEqualIgnoringNanos"
	ShouldBeEqualIgnoringSeconds TemplateID = "shouldBeEqualIgnoringSeconds"
	ShouldBeEqualIgnoringMinutes TemplateID = "shouldBeEqualIgnoringMinutes"
	ShouldBeEqualIgnoringHours   TemplateID = "shouldBeEqualIgnoringHours"

	ShouldBeLess            TemplateID = "shouldBeLess"
	ShouldBeLessOrEqual     TemplateID = "shouldBeLessOrEqual"
	ShouldBeGreater         TemplateID = "shouldBeGreater"
	ShouldBeGreaterOrEqual  TemplateID = "shouldBeGreaterOrEqual"
	ShouldBeBetween         TemplateID = "shouldBeBetween"
	ShouldBeStrictlyBetween TemplateID = "shouldBeStrictlyBetween"

	ShouldBeEqual     TemplateID = "shouldBeEqual"
	ShouldBeEqualDiff TemplateID = "shouldBeEqualDiff"
	ShouldNotBeEqual  TemplateID = "shouldNotBeEqual"
	ShouldBeIn        TemplateID = "shouldBeIn"
	ShouldNotBeIn     TemplateID = "shouldNotBeIn"
	ShouldBeNull      TemplateID = "shouldBeNull"
	ShouldNotBeNull   TemplateID = "shouldNotBeNull"
)

var defaultTemplates = []*Template{
	MustTemplate(ActualIsNull, "\nExpecting actual not to be null"),

	MustTemplate(ShouldBeBefore,
		"\nExpecting:\n  <{{.actual}}>\nto be strictly before:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeBeforeOrEqualTo,
		"\nExpecting:\n  <{{.actual}}>\nto be before or equal to:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeAfter,
		"\nExpecting:\n  <{{.actual}}>\nto be strictly after:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeAfterOrEqualTo,
		"\nExpecting:\n  <{{.actual}}>\nto be after or equal to:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeInPeriod,
		"\nExpecting:\n  <{{.actual}}>\nto be in period:\n  [{{.start}}, {{.end}}]", "actual", "start", "end"),
	MustTemplate(ShouldBeStrictlyInPeriod,
		"\nExpecting:\n  <{{.actual}}>\nto be in period:\n  ]{{.start}}, {{.end}}[", "actual", "start", "end"),

	MustTemplate(ShouldBeEqualIgnoringNanos,
		"\nExpecting:\n  <{{.actual}}>\nto have same year, month, day, hour, minute and second as:\n  <{{.other}}>\nbut had not.",
		"actual", "other"),
	MustTemplate(ShouldBeEqualIgnoringSeconds,
		"\nExpecting:\n  <{{.actual}}>\nto have same year, month, day, hour and minute as:\n  <{{.other}}>\nbut had not.",
		"actual", "other"),
	MustTemplate(ShouldBeEqualIgnoringMinutes,
		"\nExpecting:\n  <{{.actual}}>\nto have same year, month, day and hour as:\n  <{{.other}}>\nbut had not.",
		"actual", "other"),
	MustTemplate(ShouldBeEqualIgnoringHours,
		"\nExpecting:\n  <{{.actual}}>\nto have same year, month and day as:\n  <{{.other}}>\nbut had not.",
		"actual", "other"),

	MustTemplate(ShouldBeLess,
		"\nExpecting:\n  <{{.actual}}>\nto be less than:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeLessOrEqual,
		"\nExpecting:\n  <{{.actual}}>\nto be less than or equal to:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeGreater,
		"\nExpecting:\n  <{{.actual}}>\nto be greater than:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeGreaterOrEqual,
		"\nExpecting:\n  <{{.actual}}>\nto be greater than or equal to:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeBetween,
		"\nExpecting:\n  <{{.actual}}>\nto be between:\n  [{{.start}}, {{.end}}]", "actual", "start", "end"),
	MustTemplate(ShouldBeStrictlyBetween,
		"\nExpecting:\n  <{{.actual}}>\nto be between:\n  ]{{.start}}, {{.end}}[", "actual", "start", "end"),

	MustTemplate(ShouldBeEqual,
		"\nExpecting:\n  <{{.actual}}>\nto be equal to:\n  <{{.other}}>\nbut was not.", "actual", "other"),
	MustTemplate(ShouldBeEqualDiff,
		"\nExpecting:\n  <{{.actual}}>\nto be equal to:\n  <{{.other}}>\nbut was not.\ndiff (-expected +actual):\n{{.diff}}",
		"actual", "other", "diff"),
	MustTemplate(ShouldNotBeEqual,
		"\nExpecting:\n  <{{.actual}}>\nnot to be equal to:\n  <{{.other}}>", "actual", "other"),
	MustTemplate(ShouldBeIn,
		"\nExpecting:\n  <{{.actual}}>\nto be in:\n  <{{.values}}>", "actual", "values"),
	MustTemplate(ShouldNotBeIn,
		"\nExpecting:\n  <{{.actual}}>\nnot to be in:\n  <{{.values}}>", "actual", "values"),
	MustTemplate(ShouldBeNull,
		"\nExpecting:\n  <{{.actual}}>\nto be null", "actual"),
	MustTemplate(ShouldNotBeNull, "\nExpecting actual not to be null"),
}

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(defaultTemplates...)
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the built-in catalog. It is shared and never modified; use Catalog.With to
// derive a customized copy.
func Default() *Catalog {
	return defaultCatalog
}
