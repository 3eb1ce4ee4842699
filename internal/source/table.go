package source

// Table lists every published code table, newest first. Order drives
// processing and progress output.
var Table = []Source{
	{Year: 2023, URL: "https://www.mca.gov.cn/mzsj/xzqh/2023/202301xzqh.html"},
	{Year: 2022, URL: "https://www.mca.gov.cn/mzsj/xzqh/2022/202201xzqh.html"},
	{Year: 2021, URL: "https://www.mca.gov.cn/mzsj/xzqh/2021/20211201.html"},
	{Year: 2020, URL: "https://www.mca.gov.cn/mzsj/xzqh/2020/20201201.html"},
	{Year: 2019, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/2019/202002281436.html"},
	{Year: 2018, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/201903/201903011447.html"},
	{Year: 2017, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/201803/201803131454.html"},
	{Year: 2016, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/201705/201705311652.html"},
	{Year: 2015, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/2015/201706011127.html"},
	{Year: 2014, URL: "https://www.mca.gov.cn/images2/cws/201502/20150225163817214.html"},
	{Year: 2013, URL: "https://www.mca.gov.cn/images2/cws/201404/20140404125552372.htm"},
	{Year: 2012, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201707271556.html"},
	{Year: 2011, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201707271552.html"},
	{Year: 2010, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220946.html"},
	{Year: 2009, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220943.html"},
	{Year: 2008, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220941.html"},
	{Year: 2007, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220939.html"},
	{Year: 2006, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220936.html"},
	{Year: 2005, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220935.html"},
	{Year: 2004, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220930.html"},
	{Year: 2003, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220928.html"},
	{Year: 2002, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220927.html"},
	{Year: 2001, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220925.html"},
	{Year: 2000, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220923.html"},
	{Year: 1999, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220921.html"},
	{Year: 1998, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220918.html"},
	{Year: 1997, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220916.html"},
	{Year: 1996, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220914.html"},
	{Year: 1995, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220913.html"},
	{Year: 1994, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220911.html"},
	{Year: 1993, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708041023.html"},
	{Year: 1992, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220910.html"},
	{Year: 1991, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708041020.html"},
	{Year: 1990, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708041018.html"},
	{Year: 1989, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708041017.html"},
	{Year: 1988, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220903.html"},
	{Year: 1987, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/1980/201911180950.html"},
	{Year: 1986, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220859.html"},
	{Year: 1985, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220858.html"},
	{Year: 1984, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708220856.html"},
	{Year: 1983, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708160821.html"},
	{Year: 1982, URL: "https://www.mca.gov.cn/mzsj/xzqh/1980/1980/201911180942.html"},
	{Year: 1981, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708041004.html"},
	{Year: 1980, URL: "https://www.mca.gov.cn/mzsj/tjbz/a/201713/201708040959.html"},
}
