package fuzztests

import "testing"

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"project(demo)\n",
	"cmake_minimum_required(VERSION 3.20)\nproject(demo LANGUAGES C CXX)\n",
	"if(WIN32)\n  set(X 1)\nelseif(APPLE)\nset(X 2)\nelse()\nset(X 3)\nendif()\n",
	"function(f a b)\nforeach(i IN LISTS a)\nmessage(STATUS \"${i}\")\nendforeach()\nendfunction()\n",
	"target_link_libraries(app PUBLIC a b PRIVATE c INTERFACE d)\n",
	"install(TARGETS app\n  RUNTIME DESTINATION bin\n  LIBRARY DESTINATION lib)\n",
	"set(V [==[bracket ]] text]==]) #[[block\ncomment]]\n",
	"foo( # trailing\n  a\n  b\n)\n",
	"foo(a (b c) \"d\\\"e\")\r\nbar()\r\n",
	"set(X \"unterminated\n",
	"#[[never closed\n",
	"foo(a\n",
	"stray ) tokens (\n",
	"\xEF\xBB\xBFset(BOM yes)\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return append([]byte(nil), src[:maxSeedBytes]...)
	}
	return append([]byte(nil), src...)
}
