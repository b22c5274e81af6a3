// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/koru-backend/driver"
	"github.com/devblok/koru-backend/vulkan"
)

// elementInfo describes one vertex element type
type elementInfo struct {
	Name       string
	Size       int
	Format     int
	Normalized int `json:",omitempty"`
}

func main() {
	var infos []elementInfo
	for _, et := range driver.ElementTypes() {
		info := elementInfo{
			Name: et.String(),
			Size: driver.MustElementTypeSize(et),
		}
		format, err := vulkan.Format(et, false)
		if err != nil {
			log.Fatal(err)
		}
		info.Format = int(format)
		if normalized, err := vulkan.Format(et, true); err == nil && normalized != format {
			info.Normalized = int(normalized)
		}
		infos = append(infos, info)
	}

	if bytes, err := json.Marshal(infos); err == nil {
		fmt.Printf("%s", bytes)
	} else {
		log.Fatal(err)
	}
}
