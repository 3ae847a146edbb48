package taxonomy

// DefaultSkillDatabase 返回内置的技能数据库副本
// 每次调用返回新的map，调用方修改副本不会影响后续构造
func DefaultSkillDatabase() map[string][]string {
	return map[string][]string{
		// 编程语言
		"python":     {"python", "py", "python3", "django", "flask", "fastapi"},
		"java":       {"java", "j2ee", "spring", "springboot", "hibernate"},
		"javascript": {"javascript", "js", "node", "nodejs", "node.js", "typescript", "ts"},
		"c++":        {"c++", "cpp", "cplusplus"},
		"c#":         {"c#", "csharp", ".net", "dotnet", "asp.net"},
		"go":         {"go", "golang"},
		"rust":       {"rust"},
		"php":        {"php", "laravel", "symfony"},
		"ruby":       {"ruby", "rails", "ruby on rails"},
		"swift":      {"swift", "ios"},
		"kotlin":     {"kotlin", "android"},

		// Web技术
		"html":    {"html", "html5"},
		"css":     {"css", "css3", "sass", "scss", "less"},
		"react":   {"react", "reactjs", "react.js", "react native", "redux", "next.js", "nextjs"},
		"angular": {"angular", "angularjs"},
		"vue":     {"vue", "vuejs", "vue.js", "nuxt"},

		// 数据库
		"sql":           {"sql", "mysql", "postgresql", "postgres", "sqlite", "mariadb"},
		"mongodb":       {"mongodb", "mongo", "nosql"},
		"redis":         {"redis", "cache"},
		"elasticsearch": {"elasticsearch", "elastic"},

		// 数据科学与机器学习
		"pandas":       {"pandas", "dataframe"},
		"numpy":        {"numpy", "numerical"},
		"scikit-learn": {"scikit-learn", "sklearn", "machine learning", "ml"},
		"tensorflow":   {"tensorflow", "tf", "keras"},
		"pytorch":      {"pytorch", "torch"},
		"opencv":       {"opencv", "cv2", "computer vision"},

		// DevOps与工具
		"docker":     {"docker", "container", "containerization"},
		"kubernetes": {"kubernetes", "k8s", "orchestration"},
		"git":        {"git", "github", "gitlab", "version control"},
		"jenkins":    {"jenkins", "ci/cd", "continuous integration"},
		"aws":        {"aws", "amazon web services", "ec2", "s3", "lambda"},
		"azure":      {"azure", "microsoft azure"},
		"gcp":        {"gcp", "google cloud", "google cloud platform"},

		// 其他技术
		"rest":    {"rest", "restful", "api", "rest api"},
		"graphql": {"graphql", "apollo"},
		"agile":   {"agile", "scrum", "kanban", "jira"},
		"testing": {"testing", "unit test", "pytest", "jest", "junit"},
	}
}
