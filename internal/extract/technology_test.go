package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmill/internal/taxonomy"
)

func TestTechnologyDetectsKeywords(t *testing.T) {
	detector := NewTechnologyDetector(taxonomy.Default().Technologies)

	tags := detector.Detect("Développeur Python / Django, notions de SQL appréciées")
	assert.Contains(t, tags, "python")
	assert.Contains(t, tags, "django")
	assert.Contains(t, tags, "sql")
}

func TestTechnologyShortTokenBoundaries(t *testing.T) {
	detector := NewTechnologyDetector([]string{"r", "go", "c"})

	assert.Empty(t, detector.Detect("rejoignez notre service R&D et HR"))
	assert.Empty(t, detector.Detect("framework Django exigé"))
	assert.Empty(t, detector.Detect("c++ uniquement"))

	assert.Equal(t, []string{"r"}, detector.Detect("analyses statistiques en R"))
	assert.Equal(t, []string{"go"}, detector.Detect("backend écrit en Go"))
	assert.Equal(t, []string{"c"}, detector.Detect("driver en C, bas niveau"))
}

func TestTechnologySymbolKeywords(t *testing.T) {
	detector := NewTechnologyDetector([]string{"c++", "c#", "java"})

	tags := detector.Detect("Développeur C++ et C#")
	assert.Equal(t, []string{"c++", "c#"}, tags)

	// "java" must not fire inside "javascript".
	assert.Empty(t, detector.Detect("expert javascript"))
	assert.Equal(t, []string{"java"}, detector.Detect("stack Java 21"))
}

func TestTechnologyVocabularyOrder(t *testing.T) {
	detector := NewTechnologyDetector([]string{"kubernetes", "docker", "aws"})

	tags := detector.Detect("aws, docker, kubernetes")
	assert.Equal(t, []string{"kubernetes", "docker", "aws"}, tags)
}

func TestTechnologyCaseInsensitive(t *testing.T) {
	detector := NewTechnologyDetector([]string{"python"})

	assert.Equal(t, []string{"python"}, detector.Detect("PYTHON requis"))
}

func TestTechnologyEmptyText(t *testing.T) {
	detector := NewTechnologyDetector(taxonomy.Default().Technologies)
	assert.Empty(t, detector.Detect(""))
}

func TestTechnologyDeduplicates(t *testing.T) {
	detector := NewTechnologyDetector([]string{"python"})

	tags := detector.Detect("python python python")
	assert.Equal(t, []string{"python"}, tags)
}
