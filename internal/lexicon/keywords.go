// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

// badTitleKeywords mark journal, conference, and institutional boilerplate.
// Entries with spaces or punctuation never match a single token; they are
// kept so the list stays a faithful record of observed header noise.
var badTitleKeywords = []string{
	"usa", "proceedings", "letter", "article", "articles", "communicated by",
	"communicated_by", "manuscript", "public access", "usenix", "perspectives",
	"brevia", "commun ", "conference",
	"symposium", "vol", "ieee", "editor", "published", "permissions",
	"doi", "university", "no.", "issue", "pp.",
	"society", "dissertation", "thesis", "association",
	"consideration", "publication", "faculty",
	"department", "submission", "monday", "tuesday",
	"wednesday", "thursday", "friday", "saturday", "sunday", "january",
	"february", "march", "april", "june", "july", "august", "september",
	"october", "november", "december", "journal", "copyright", "title",
	"uptec", "oktober", "examensarbete", "siam", "workshop",
	"email", "e-mail",
	"submitted", "acta", "springer", "verlag",
	"elsevier", "institute", "lecture", "monograph",
	"supervisor", "prof", "dr.", "section", "abstract.", "edited",
	"sciencedirect", "arxiv",
	"contents", "project", "chapter",
	"practices", "talk", "seminar", "brics", "squibs",
	"meeting", "departamento", "number", "insitution", "repository",
	"technical", "date", "page", "press", "research", "publisher",
	"tech", "laboratory", "id",
	"viewpoint", "letters", "week", "month", "trial", "scholarly", "volume",
	"editorials",
}
