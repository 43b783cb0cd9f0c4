package skills

// DefaultSynonyms maps a canonical skill to the aliases accepted for it.
// The relation is used in both directions.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"javascript":              {"js", "ecmascript", "es6"},
		"typescript":              {"ts"},
		"react":                   {"frontend", "reactjs", "react.js"},
		"react native":            {"react-native", "reactnative"},
		"node.js":                 {"nodejs", "node"},
		"vue":                     {"vuejs", "vue.js"},
		"angular":                 {"angularjs", "angular.js"},
		"go":                      {"golang"},
		"python":                  {"py"},
		"kubernetes":              {"k8s"},
		"postgresql":              {"postgres", "psql"},
		"mongodb":                 {"mongo"},
		"apis":                    {"api", "rest api", "web services"},
		"rest":                    {"restful", "rest api"},
		"html":                    {"html5"},
		"css":                     {"css3", "scss", "sass"},
		"machine learning":        {"ml"},
		"artificial intelligence": {"ai"},
		"aws":                     {"amazon web services"},
		"gcp":                     {"google cloud", "google cloud platform"},
		"ci/cd":                   {"cicd", "continuous integration", "continuous delivery"},
		"git":                     {"github", "gitlab", "version control"},
		"agile":                   {"scrum", "kanban"},
		"manual testing":          {"manual qa", "qa"},
		"automation testing":      {"test automation", "selenium", "automated testing"},
		"crm":                     {"salesforce", "hubspot"},
		"communication":           {"communication skills"},
		"negotiation":             {"negotiation skills"},
		"ios":                     {"swift"},
		"android":                 {"kotlin"},
	}
}

// DefaultVocabulary lists the skills recognised in free-text job descriptions
// when a posting carries no explicit skill list. Matching against it is a
// coarse token heuristic, not an extraction model.
func DefaultVocabulary() []string {
	return []string{
		"javascript", "typescript", "react", "react native", "node.js", "vue", "angular",
		"html", "css", "python", "java", "golang", "ruby", "php", "kotlin", "swift",
		"sql", "postgresql", "mysql", "mongodb", "redis", "kafka", "graphql", "rest", "apis",
		"docker", "kubernetes", "aws", "azure", "gcp", "linux", "git", "ci/cd",
		"machine learning", "agile", "scrum", "ios", "android",
		"manual testing", "automation testing", "selenium",
		"crm", "communication", "negotiation", "sales",
	}
}
