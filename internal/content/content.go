// Package content serves the static portions of the site: experience and
// certification data files plus the skill groupings shown on the home page.
package content

import (
	"encoding/json"
	"os"

	"github.com/KhaledELG/portfolio-kelg/internal/models"
)

var Skills = map[string][]string{
	"Cloud":      {"AWS", "Azure", "GCP", "OVH"},
	"DevOps":     {"Docker", "Kubernetes", "Terraform", "Ansible", "GitHub Actions"},
	"Security":   {"Vault", "IAM", "Zero Trust"},
	"Monitoring": {"Prometheus", "Grafana", "ELK", "Loki"},
}

var TechStack = map[string][]string{
	"Cloud & Orchestration":     {"AWS", "Kubernetes", "Docker", "Harbor", "EKS"},
	"Infrastructure as Code":    {"Terraform", "Ansible", "Helm", "CloudFormation"},
	"CI/CD & GitOps":            {"GitLab CI", "ArgoCD", "Jenkins", "GitHub Actions"},
	"Security":                  {"Trivy", "SonarQube", "Vault", "Grype", "DefectDojo", "Dependency Track"},
	"Networking & Service Mesh": {"Cilium", "Traefik", "MetalLB", "cert-manager"},
	"Observability":             {"Prometheus", "Grafana", "Elastic", "Kibana"},
	"Databases & Storage":       {"Ceph", "Rook", "PostgreSQL", "Aurora"},
	"Languages":                 {"Go", "Python", "Bash", "YAML"},
}

// LoadExperiences reads the experience entries from path. A missing file
// yields an empty list rather than an error.
func LoadExperiences(path string) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := loadJSON(path, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// LoadCertifications reads the certification entries from path. A missing
// file yields an empty list rather than an error.
func LoadCertifications(path string) ([]models.Certification, error) {
	var certifications []models.Certification
	if err := loadJSON(path, &certifications); err != nil {
		return nil, err
	}
	return certifications, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}
