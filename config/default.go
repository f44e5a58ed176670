package config

func GetDefault() Config {
	return Config{
		ProjectsFile: "list_project.json",
		OutputDir:    ".",
	}
}
