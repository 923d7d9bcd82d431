package matcher

import (
	"sort"

	"ordo/internal/classify"
)

// MovieGroup is the unit of organization: one movie file, its matched
// subtitles, and the tag resolved before copying. Movie is nil for orphaned
// subtitle groups.
type MovieGroup struct {
	Title     string
	TitleKey  string
	Movie     *classify.MediaFile
	Subtitles []classify.MediaFile
	Tag       string
}

// Orphaned reports whether the group has subtitles but no movie to anchor a
// destination folder.
func (g *MovieGroup) Orphaned() bool {
	return g.Movie == nil
}

// Duplicate records a movie file that lost a first-seen-wins title collision.
type Duplicate struct {
	TitleKey string
	Kept     string
	Skipped  string
}

// Result holds the grouped view of one scan. Groups with a movie come first,
// ordered by when their movie was first seen; orphaned groups follow, ordered
// by when their first subtitle was seen.
type Result struct {
	Groups     []MovieGroup
	Duplicates []Duplicate
}

type partition struct {
	group      MovieGroup
	movieIndex int
	subIndex   int
	subSeen    map[string]struct{}
}

// Group partitions media files by title key. The input order is the scan
// order, which drives both collision resolution and output ordering.
func Group(files []classify.MediaFile) *Result {
	result := &Result{}
	partitions := make(map[string]*partition)

	for i := range files {
		file := files[i]
		part, ok := partitions[file.TitleKey]
		if !ok {
			part = &partition{
				group:      MovieGroup{TitleKey: file.TitleKey},
				movieIndex: -1,
				subIndex:   -1,
				subSeen:    make(map[string]struct{}),
			}
			partitions[file.TitleKey] = part
		}

		switch file.Kind {
		case classify.KindMovie:
			if part.group.Movie != nil {
				result.Duplicates = append(result.Duplicates, Duplicate{
					TitleKey: file.TitleKey,
					Kept:     part.group.Movie.AbsolutePath,
					Skipped:  file.AbsolutePath,
				})
				continue
			}
			part.group.Movie = &files[i]
			part.group.Title = file.Title
			part.movieIndex = i
		case classify.KindSubtitle:
			if _, dup := part.subSeen[file.AbsolutePath]; dup {
				continue
			}
			part.subSeen[file.AbsolutePath] = struct{}{}
			part.group.Subtitles = append(part.group.Subtitles, file)
			if part.subIndex < 0 {
				part.subIndex = i
				if part.group.Title == "" {
					part.group.Title = file.Title
				}
			}
		}
	}

	ordered := make([]*partition, 0, len(partitions))
	for _, part := range partitions {
		ordered = append(ordered, part)
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		pa, pb := ordered[a], ordered[b]
		if (pa.movieIndex >= 0) != (pb.movieIndex >= 0) {
			return pa.movieIndex >= 0
		}
		if pa.movieIndex >= 0 {
			return pa.movieIndex < pb.movieIndex
		}
		return pa.subIndex < pb.subIndex
	})

	result.Groups = make([]MovieGroup, 0, len(ordered))
	for _, part := range ordered {
		result.Groups = append(result.Groups, part.group)
	}
	return result
}
