package matching

import (
	"sort"
	"strings"
)

// Curated synonym groups. The vocabulary is small and hand-maintained on
// purpose: no edit distance, no embeddings.
var synonymGroups = [][]string{
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"node", "nodejs", "node.js"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"golang", "go"},
	{"python", "py"},
	{"postgresql", "postgres", "psql"},
	{"mysql", "mariadb"},
	{"mongodb", "mongo"},
	{"kubernetes", "k8s"},
	{"docker", "containers"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"azure", "microsoft azure"},
	{"ci/cd", "cicd", "continuous integration"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"c#", "csharp"},
	{".net", "dotnet"},
	{"html", "html5"},
	{"css", "css3"},
	{"sql", "structured query language"},
	{"ui/ux", "ux", "ui design", "user experience"},
	{"project management", "pm"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int)
	for i, group := range synonymGroups {
		for _, token := range group {
			idx[token] = i
		}
	}
	return idx
}

// SkillsEquivalent reports whether two skill tokens denote the same
// competency: exact match, containment either direction, or membership in a
// shared synonym group, checked in that order.
func SkillsEquivalent(a, b string) bool {
	a = normalizeSkillToken(a)
	b = normalizeSkillToken(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	ga, ok := synonymIndex[a]
	if !ok {
		return false
	}
	gb, ok := synonymIndex[b]
	if !ok {
		return false
	}
	return ga == gb
}

type SkillScore struct {
	Score   float64
	Matched []string
	Missing []string
}

const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

// SkillSetScore measures how well a subject's skills cover a target's
// requirements. Required coverage carries 70% of the factor, preferred 30%.
// An empty requirement list counts as fully satisfied so listings without
// explicit requirements are not penalized.
func SkillSetScore(subjectSkills, requiredSkills, preferredSkills []string) SkillScore {
	reqCov, reqMatched, missing := coverage(subjectSkills, requiredSkills)
	prefCov, prefMatched, _ := coverage(subjectSkills, preferredSkills)

	matched := make([]string, 0, len(reqMatched)+len(prefMatched))
	matched = append(matched, reqMatched...)
	seen := make(map[string]struct{}, len(reqMatched))
	for _, m := range reqMatched {
		seen[m] = struct{}{}
	}
	for _, m := range prefMatched {
		if _, ok := seen[m]; ok {
			continue
		}
		matched = append(matched, m)
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return SkillScore{
		Score:   requiredSkillWeight*reqCov + preferredSkillWeight*prefCov,
		Matched: matched,
		Missing: missing,
	}
}

func coverage(subjectSkills, wanted []string) (float64, []string, []string) {
	if len(wanted) == 0 {
		return 1.0, nil, nil
	}

	matched := make([]string, 0, len(wanted))
	unmatched := make([]string, 0)
	for _, w := range wanted {
		found := false
		for _, s := range subjectSkills {
			if SkillsEquivalent(s, w) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, normalizeSkillToken(w))
		} else {
			unmatched = append(unmatched, normalizeSkillToken(w))
		}
	}

	return float64(len(matched)) / float64(len(wanted)), matched, unmatched
}

func normalizeSkillToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
