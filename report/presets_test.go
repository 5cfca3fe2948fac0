package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetColumnsKnownTypes(t *testing.T) {
	for _, reportType := range PresetTypes() {
		preset := PresetColumns(reportType)
		assert.NotEmpty(t, preset, "preset %q is empty", reportType)

		for entity, columns := range preset {
			assert.NotEmpty(t, columns, "preset %q has no columns for %s", reportType, entity)
			// every preset column must resolve in the registry
			for _, label := range columns {
				_, ok := ResolvePath(entity, label)
				assert.True(t, ok, "preset %q column %q does not resolve for %s", reportType, label, entity)
			}
		}
	}
}

func TestPresetColumnsSparePartsFirstClass(t *testing.T) {
	// every preset that includes maintenance must carry a spare-parts column
	for _, reportType := range PresetTypes() {
		preset := PresetColumns(reportType)
		columns, ok := preset[EntityMaintenance]
		if !ok {
			continue
		}
		found := false
		for _, label := range columns {
			if path, _ := ResolvePath(EntityMaintenance, label); len(path) > len("spareParts") && path[:len("spareParts")] == "spareParts" {
				found = true
				break
			}
		}
		assert.True(t, found, "preset %q relegates spare parts", reportType)
	}
}

func TestPresetColumnsUnknownType(t *testing.T) {
	assert.Empty(t, PresetColumns("quarterly-unicorns"))
	assert.Empty(t, PresetColumns(""))
}

func TestPresetColumnsReturnsCopy(t *testing.T) {
	first := PresetColumns("comprehensive")
	first[EntityFuel][0] = "tampered"

	second := PresetColumns("comprehensive")
	assert.NotEqual(t, "tampered", second[EntityFuel][0])
}
