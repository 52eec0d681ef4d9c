package utils

import "math/rand"

const alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AlnumString 使用给定的随机源生成长度为 l 的字母数字串，r 为 nil 时使用全局源
func AlnumString(r *rand.Rand, l int) string {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		a[i] = alnum[intn(len(alnum))]
	}
	return string(a)
}

// AlnumStrings 生成 n 个互不相同的字母数字串
func AlnumStrings(r *rand.Rand, n, l int) []string {
	seen := make(map[string]struct{}, n)
	res := make([]string, 0, n)
	for len(res) < n {
		s := AlnumString(r, l)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}

func EmptyOrElse(s string, defaultValue string) string {
	if s == "" {
		return defaultValue
	}
	return s
}
