package testutil

// GoogleRepos is the expected unfiltered listing for GoogleFixture.
var GoogleRepos = []string{
	"episodes.dart",
	"cpp-netlib",
	"dagger",
	"ios-webkit-debug-proxy",
	"google.github.io",
	"kratu",
	"build-debian-cloud",
	"traceur-compiler",
	"firmata.py",
}

// GoogleApache2Repos is the expected listing for GoogleFixture filtered by apache-2.0.
var GoogleApache2Repos = []string{
	"dagger",
	"kratu",
	"traceur-compiler",
	"firmata.py",
}

func license(key, name string) map[string]any {
	return map[string]any{
		"key":     key,
		"name":    name,
		"spdx_id": nil,
		"url":     "https://api.github.com/licenses/" + key,
	}
}

func repo(name, description string, lic any) map[string]any {
	return map[string]any{
		"name":        name,
		"full_name":   "google/" + name,
		"private":     false,
		"description": description,
		"html_url":    "https://github.com/google/" + name,
		"fork":        false,
		"license":     lic,
	}
}

// GoogleFixture is a trimmed copy of the public google org listing. The org
// payload has no repos_url so GitHubAPI points it at itself.
func GoogleFixture() Fixture {
	apache := license("apache-2.0", "Apache License 2.0")
	return Fixture{
		Org: "google",
		OrgPayload: map[string]any{
			"login":        "google",
			"id":           1342004,
			"url":          "https://api.github.com/orgs/google",
			"description":  "Google ❤️ Open Source",
			"public_repos": 9,
		},
		ReposPayload: []any{
			repo("episodes.dart", "A framework for timing performance of web apps.", license("bsd-3-clause", "BSD 3-Clause \"New\" or \"Revised\" License")),
			repo("cpp-netlib", "The C++ Network Library Project", license("bsl-1.0", "Boost Software License 1.0")),
			repo("dagger", "A fast dependency injector for Android and Java.", apache),
			repo("ios-webkit-debug-proxy", "A DevTools proxy for iOS devices.", license("other", "Other")),
			repo("google.github.io", "", nil),
			repo("kratu", "", apache),
			repo("build-debian-cloud", "", license("other", "Other")),
			repo("traceur-compiler", "Traceur is a JavaScript.next-to-JavaScript-of-today compiler", apache),
			repo("firmata.py", "", apache),
		},
	}
}
