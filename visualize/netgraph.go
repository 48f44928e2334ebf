package visualize

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/RuiCat/dkcircuit/circuit"
	"github.com/RuiCat/dkcircuit/element"
)

// RenderNetGraph renders elements and the nets their pins currently belong
// to as a force-directed graph: one node per named element, one node per
// net reached from any of them, and an edge per pin labeled with its
// polarity. Nets have no inherent name, so one with no bound name is
// labeled "net#<id>".
func RenderNetGraph(w io.Writer, c *circuit.Circuit, elements map[string]*element.Element) error {
	names := c.NetNames()
	byHandle := make(map[int]string, len(names))
	for name, handle := range names {
		byHandle[handle] = name
	}
	label := func(id int) string {
		if name, ok := byHandle[id]; ok {
			return name
		}
		return fmt.Sprintf("net#%d", id)
	}

	elemNames := make([]string, 0, len(elements))
	for name := range elements {
		elemNames = append(elemNames, name)
	}
	sort.Strings(elemNames)

	var nodes []opts.GraphNode
	var links []opts.GraphLink
	seenNets := make(map[string]bool)

	for _, elemName := range elemNames {
		e := elements[elemName]
		nodes = append(nodes, opts.GraphNode{
			Name:     elemName,
			Category: 0,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
		for _, pinName := range e.PinNames() {
			p, err := e.Pin(pinName)
			if err != nil {
				return fmt.Errorf("visualize: %w", err)
			}
			net, err := c.NetFor(circuit.Pin(p))
			if err != nil {
				return fmt.Errorf("visualize: %w", err)
			}
			netLabel := label(net.ID())
			if !seenNets[netLabel] {
				seenNets[netLabel] = true
				nodes = append(nodes, opts.GraphNode{
					Name:     netLabel,
					Category: 1,
					Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
				})
			}
			polarity := 0
			if len(p.Entries) > 0 {
				polarity = p.Entries[0].Polarity
			}
			links = append(links, opts.GraphLink{
				Source: elemName,
				Target: netLabel,
				Value:  float32(polarity),
			})
		}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Circuit net graph",
			Subtitle: "elements and the nets connecting their branches",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
	)
	graph.AddSeries("net graph", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "element", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "net", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: 80},
			EdgeLabel:          &opts.EdgeLabel{Show: opts.Bool(true)},
			FocusNodeAdjacency: opts.Bool(true),
		}))

	return graph.Render(w)
}
