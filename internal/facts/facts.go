// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package facts

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	iu "github.com/choria-io/execvars/internal/util"
	"github.com/choria-io/execvars/model"
)

// StandardFacts returns a map of standard host facts, user supplied
// override files are merged over the gathered values
func StandardFacts(ctx context.Context, log model.Logger) (map[string]any, error) {
	sf, err := standardFacts(ctx)
	if err != nil {
		return nil, err
	}

	for _, dir := range overrideDirs() {
		for _, name := range []string{"facts.json", "facts.yaml"} {
			file := filepath.Join(dir, name)
			if !iu.FileExists(file) {
				continue
			}

			log.Debug("Reading facts", "file", file)

			fb, err := os.ReadFile(file)
			if err != nil {
				log.Error("Failed to read facts file", "file", file, "error", err)
				continue
			}

			var f map[string]any
			err = yaml.Unmarshal(fb, &f)
			if err != nil {
				log.Error("Failed to unmarshal facts file", "file", file, "error", err)
				continue
			}

			sf = iu.DeepMergeMap(sf, f)
		}
	}

	return sf, nil
}

// JSON renders facts in the form used for gjson path lookups
func JSON(facts map[string]any) ([]byte, error) {
	return json.Marshal(facts)
}

func overrideDirs() []string {
	dirs := []string{"/etc/execvars"}

	if xdg.ConfigHome != "" {
		dirs = append(dirs, filepath.Join(xdg.ConfigHome, "execvars"))
	}

	return dirs
}

func standardFacts(ctx context.Context) (map[string]any, error) {
	h, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	facts := map[string]any{
		"host": map[string]any{
			"hostname":         h.Hostname,
			"os":               h.OS,
			"platform":         h.Platform,
			"platform_version": h.PlatformVersion,
			"kernel_version":   h.KernelVersion,
			"kernel_arch":      h.KernelArch,
			"virtualization":   h.VirtualizationSystem,
			"uptime_seconds":   h.Uptime,
		},
	}

	// the remaining collectors are optional, hosts without them still work
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		facts["mem"] = map[string]any{
			"total_bytes":     vm.Total,
			"available_bytes": vm.Available,
		}
	}

	cpus, err := cpu.CountsWithContext(ctx, true)
	if err == nil {
		facts["cpu"] = map[string]any{
			"count": cpus,
		}
	}

	la, err := load.AvgWithContext(ctx)
	if err == nil {
		facts["load"] = map[string]any{
			"load1":  la.Load1,
			"load5":  la.Load5,
			"load15": la.Load15,
		}
	}

	return facts, nil
}
